package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/infrastructure/sns"
)

// Fallbacks applied when the event carries no actor display info.
const (
	fallbackActorName = "Someone"
)

type Service interface {
	// HandleEvent reacts to a single comment/upvote creation event. A missing
	// product or a suppressed decision is a no-op, not an error; only store
	// failures are returned, so the delivery runtime can retry them.
	HandleEvent(ctx context.Context, evt domain.Event) error
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
}

type service struct {
	products      productStore
	notifications notificationStore
	push          sns.Publisher // optional
}

func NewService(products productStore, notifications notificationStore, push sns.Publisher) Service {
	return &service{products: products, notifications: notifications, push: push}
}

// Decide applies the fan-out rule: given an event and the product it targets,
// it returns the notification for the product owner, or nil when the event is
// suppressed (missing product, product without an owner, or a self-action).
func Decide(evt domain.Event, product *domain.Product) *domain.Notification {
	if product == nil {
		return nil
	}
	if product.CreatedBy == "" {
		return nil
	}
	if evt.ActorID == product.CreatedBy {
		return nil
	}

	actorName := evt.Actor.DisplayName
	if actorName == "" {
		actorName = fallbackActorName
	}
	verb := "commented on"
	if evt.Kind == domain.EventUpvote {
		verb = "upvoted"
	}
	return &domain.Notification{
		UserID:     product.CreatedBy,
		Type:       evt.Kind,
		ProductID:  evt.ProductID,
		ActorID:    evt.ActorID,
		ActorName:  actorName,
		ActorPhoto: evt.Actor.ProfilePicture,
		Message:    fmt.Sprintf("%s %s your product.", actorName, verb),
		Read:       false,
	}
}

func (s *service) HandleEvent(ctx context.Context, evt domain.Event) error {
	product, err := s.products.Get(ctx, evt.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Info("product not found, skipping notification",
				"product_id", evt.ProductID, "kind", evt.Kind)
			product = nil
		} else {
			return err
		}
	}

	n := Decide(evt, product)
	if n == nil {
		slog.Debug("notification suppressed",
			"product_id", evt.ProductID, "actor_id", evt.ActorID, "kind", evt.Kind)
		return nil
	}

	if err := s.notifications.Put(ctx, n); err != nil {
		return err
	}
	slog.Info("notification created",
		"recipient", n.UserID, "actor_id", n.ActorID, "kind", n.Type)

	if s.push != nil {
		if err := s.push.Publish(ctx, n); err != nil {
			slog.Warn("push publish failed", "notification_id", n.NotificationID, "err", err)
		}
	}
	return nil
}
