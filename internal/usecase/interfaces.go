package usecase

import (
	"context"

	"github.com/xavierca1/site-forms/internal/entity"
)

// ContactChannel delivers a contact notification to the site owner.
type ContactChannel interface {
	Send(ctx context.Context, n entity.Notification) error
	Name() string
}

// SubscriberAPI adds an address to the external mailing list.
type SubscriberAPI interface {
	Subscribe(ctx context.Context, sub entity.Subscription) (*entity.SubscriberResponse, error)
}
