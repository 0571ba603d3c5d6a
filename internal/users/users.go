// Package users manages accounts and the subscriptions between readers and
// recipe authors.
package users

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"foodgram/pkg/validation"
	"strings"

	"go.uber.org/zap"
)

// reservedUsername collides with the /users/me/ route.
const reservedUsername = "me"

// CreateInput carries the fields of a new account.
type CreateInput struct {
	Email     string `json:"email"      validate:"required,email,max=254"`
	Username  string `json:"username"   validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name"  validate:"required,max=150"`
}

func (in *CreateInput) normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
}

// SubscriptionPage is a page of followed authors and the total number of
// followed authors.
type SubscriptionPage struct {
	Subscriptions []domain.Subscription
	Count         int64
}

type users struct {
	storage storage.Storage
}

func (u users) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	input.normalize()
	if err := validation.Struct(&input); err != nil {
		return nil, err //nolint: wrapcheck
	}
	if strings.EqualFold(input.Username, reservedUsername) {
		return nil, serrors.InvalidField("username", "username %q is reserved", input.Username)
	}

	user, err := u.storage.StoreUser(ctx, domain.User{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a user with this email or username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}
	logger.Info(ctx, "user created", zap.String("user_id", user.ID.String()))

	return user, nil
}

func (u users) Get(ctx context.Context, viewer domain.UserID, id domain.UserID) (*domain.User, error) {
	user, err := u.storage.UserByID(ctx, viewer, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (u users) List(ctx context.Context, viewer domain.UserID, page storage.Page) (storage.UserPage, error) {
	res, err := u.storage.Users(ctx, viewer, page)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("could not list users: %w", err)
	}

	return res, nil
}

// Subscribe makes userID follow authorID and returns the author together
// with at most recipesLimit of their newest recipes (all when zero).
func (u users) Subscribe(ctx context.Context,
	userID, authorID domain.UserID,
	recipesLimit uint) (*domain.Subscription, error) {
	if userID.IsZero() {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if userID == authorID {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot subscribe to yourself")
	}

	author, err := u.Get(ctx, userID, authorID)
	if err != nil {
		return nil, err
	}

	subscribed, err := u.storage.Subscribe(ctx, userID, authorID)
	switch {
	case errors.Is(err, storage.ErrReferenced):
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	case err != nil:
		return nil, fmt.Errorf("could not subscribe: %w", err)
	case !subscribed:
		return nil, serrors.With(serrors.ErrBadRequest, "you are already subscribed to this author")
	}
	author.IsSubscribed = true

	subscriptions, err := u.withRecipes(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return nil, err
	}

	return &subscriptions[0], nil
}

func (u users) Unsubscribe(ctx context.Context, userID, authorID domain.UserID) error {
	if userID.IsZero() {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}

	removed, err := u.storage.Unsubscribe(ctx, userID, authorID)
	if err != nil {
		return fmt.Errorf("could not unsubscribe: %w", err)
	}
	if removed {
		return nil
	}

	if _, err := u.Get(ctx, userID, authorID); err != nil {
		return err
	}

	return serrors.With(serrors.ErrBadRequest, "you are not subscribed to this author")
}

// Subscriptions returns a page of the authors userID follows, each with at
// most recipesLimit of their newest recipes (all when zero).
func (u users) Subscriptions(ctx context.Context,
	userID domain.UserID,
	page storage.Page,
	recipesLimit uint) (SubscriptionPage, error) {
	if userID.IsZero() {
		return SubscriptionPage{}, serrors.KindOnly(serrors.ErrUnauthorized)
	}

	authors, err := u.storage.Subscriptions(ctx, userID, page)
	if err != nil {
		return SubscriptionPage{}, fmt.Errorf("could not list subscriptions: %w", err)
	}

	subscriptions, err := u.withRecipes(ctx, authors.Users, recipesLimit)
	if err != nil {
		return SubscriptionPage{}, err
	}

	return SubscriptionPage{Subscriptions: subscriptions, Count: authors.Count}, nil
}

func (u users) withRecipes(ctx context.Context, authors []domain.User, limit uint) ([]domain.Subscription, error) {
	subscriptions := make([]domain.Subscription, 0, len(authors))
	if len(authors) == 0 {
		return subscriptions, nil
	}

	ids := make([]domain.UserID, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	recipes, err := u.storage.ShortRecipesByAuthors(ctx, ids, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get author recipes: %w", err)
	}

	for _, a := range authors {
		authorRecipes := recipes.Recipes[a.ID]
		if authorRecipes == nil {
			authorRecipes = []domain.Recipe{}
		}
		subscriptions = append(subscriptions, domain.Subscription{
			Author:       a,
			Recipes:      authorRecipes,
			RecipesCount: recipes.Counts[a.ID],
		})
	}

	return subscriptions, nil
}

func New(storage storage.Storage) Users {
	return &users{storage: storage}
}
