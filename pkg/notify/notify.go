package notify

import (
	"fmt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

// OrderPlaced is sent to the notification actor after an order commits.
type OrderPlaced struct {
	OrderID   string
	UserID    string
	Total     float64
	ItemCount int
}

// NotificationActor handles order confirmation messages. Delivery is
// fire-and-forget; a slow or failed notification never blocks a request.
type NotificationActor struct {
	logger *zap.Logger
}

func (a *NotificationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *OrderPlaced:
		a.logger.Info("Order confirmation",
			zap.String("order_id", msg.OrderID),
			zap.String("user_id", msg.UserID),
			zap.Float64("total", msg.Total),
			zap.Int("item_count", msg.ItemCount))

	case *actor.Started:
		a.logger.Info("Notification actor started")

	case *actor.Stopping:
		a.logger.Info("Notification actor stopping")
	}
}

// Notifier spawns the notification actor and implements service.Notifier.
type Notifier struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func NewNotifier(logger *zap.Logger) (*Notifier, error) {
	system := actor.NewActorSystem()

	props := actor.PropsFromProducer(func() actor.Actor {
		return &NotificationActor{logger: logger.Named("notification-actor")}
	})
	pid, err := system.Root.SpawnNamed(props, "notification-actor")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn notification actor: %w", err)
	}

	return &Notifier{system: system, pid: pid}, nil
}

func (n *Notifier) OrderPlaced(order *models.Order) {
	n.system.Root.Send(n.pid, &OrderPlaced{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		ItemCount: len(order.Items),
	})
}

func (n *Notifier) Shutdown() {
	n.system.Root.StopFuture(n.pid).Wait()
}
