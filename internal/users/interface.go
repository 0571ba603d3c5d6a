package users

import (
	"context"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"
)

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Users interface {
	Create(ctx context.Context, input CreateInput) (*domain.User, error)
	Get(ctx context.Context, viewer domain.UserID, ID domain.UserID) (*domain.User, error)
	List(ctx context.Context, viewer domain.UserID, page storage.Page) (storage.UserPage, error)
	Subscribe(ctx context.Context, userID, authorID domain.UserID, recipesLimit uint) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, userID, authorID domain.UserID) error
	Subscriptions(ctx context.Context, userID domain.UserID, page storage.Page, recipesLimit uint) (SubscriptionPage, error)
}
