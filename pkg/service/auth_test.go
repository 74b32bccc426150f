package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
)

func setupAuth(t *testing.T) (*service.AuthService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	tokens := service.NewTokenManager("test-secret", time.Hour)
	return service.NewAuthService(store.Users(), tokens, zap.NewNop()), store
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	userID, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	loggedIn, loginToken, err := auth.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	cases := []struct {
		name, userName, email, password string
	}{
		{"missing name", "", "a@example.com", "pw"},
		{"missing email", "A", "", "pw"},
		{"missing password", "A", "a@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Register(ctx, tc.userName, tc.email, tc.password)
			assert.True(t, service.IsValidation(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, store := setupAuth(t)
	ctx := context.Background()

	first, _, err := auth.Register(ctx, "Alice", "alice@example.com", "pw-one")
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, "Impostor", "alice@example.com", "pw-two")
	require.Error(t, err)
	assert.True(t, service.IsConflict(err))

	// The original registration is the only record left standing.
	stored, err := store.Users().FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Alice", stored.Name)
}

func TestLoginBadCredentials(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "Alice", "alice@example.com", "correct-pw")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "alice@example.com", "wrong-pw")
		assert.True(t, service.IsAuth(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "nobody@example.com", "correct-pw")
		assert.True(t, service.IsAuth(err))
	})
}

func TestPasswordHashesArePerUser(t *testing.T) {
	auth, _ := setupAuth(t)
	ctx := context.Background()

	alice, _, err := auth.Register(ctx, "Alice", "alice@example.com", "shared-password")
	require.NoError(t, err)
	bob, _, err := auth.Register(ctx, "Bob", "bob@example.com", "shared-password")
	require.NoError(t, err)

	// Same plaintext must not yield the same stored hash.
	assert.NotEqual(t, alice.PasswordHash, bob.PasswordHash)

	_, _, err = auth.Login(ctx, "bob@example.com", "shared-password")
	assert.NoError(t, err)
}

func TestProfileUnknownUser(t *testing.T) {
	auth, _ := setupAuth(t)

	_, err := auth.Profile(context.Background(), "no-such-user")
	assert.True(t, service.IsNotFound(err))
}

func TestTokenVerification(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		tokens := service.NewTokenManager("test-secret", time.Millisecond)
		token, err := tokens.Issue("user-1")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = tokens.Verify(token)
		assert.True(t, service.IsAuth(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		issued, err := service.NewTokenManager("secret-a", time.Hour).Issue("user-1")
		require.NoError(t, err)

		_, err = service.NewTokenManager("secret-b", time.Hour).Verify(issued)
		assert.True(t, service.IsAuth(err))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.NewTokenManager("test-secret", time.Hour).Verify("not-a-token")
		assert.True(t, service.IsAuth(err))
	})
}
