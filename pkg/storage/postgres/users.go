package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable         = "users"
	subscriptionsTable = "subscriptions"
)

// userColumns selects PgUserView columns from users aliased as "u". The
// is_subscribed flag is computed for viewer and is always false for
// anonymous viewers.
func userColumns(viewer domain.UserID) []interface{} {
	subscribed := goqu.L("FALSE").As("is_subscribed")
	if !viewer.IsZero() {
		subscribed = goqu.L("EXISTS ?",
			dialect.From(subscriptionsTable).
				Select(goqu.L("1")).
				Where(
					goqu.I("subscriptions.user_id").Eq(uuid.UUID(viewer)),
					goqu.I("subscriptions.author_id").Eq(goqu.I("u.id")),
				),
		).As("is_subscribed")
	}

	return []interface{}{
		goqu.I("u.id").As("id"),
		goqu.I("u.email").As("email"),
		goqu.I("u.username").As("username"),
		goqu.I("u.first_name").As("first_name"),
		goqu.I("u.last_name").As("last_name"),
		goqu.I("u.created_at").As("created_at"),
		subscribed,
	}
}

// StoreUser inserts the user and returns it with the generated id and
// creation time. Duplicate emails or usernames wrap storage.ErrDuplicate.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUserView
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(
			goqu.C("id"), goqu.C("email"), goqu.C("username"),
			goqu.C("first_name"), goqu.C("last_name"), goqu.C("created_at"),
			goqu.L("FALSE").As("is_subscribed"),
		).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateError(err))
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: nothing returned")
	}

	out := stored.ToDomain()

	return &out, nil
}

func (p *PgSQL) UserByID(ctx context.Context, viewer, id domain.UserID) (*domain.User, error) {
	var row PgUserView
	found, err := p.Builder.From(goqu.T(usersTable).As("u")).
		Select(userColumns(viewer)...).
		Where(goqu.I("u.id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	user := row.ToDomain()

	return &user, nil
}

func (p *PgSQL) Users(ctx context.Context, viewer domain.UserID, page storage.Page) (storage.UserPage, error) {
	ds := p.Builder.From(goqu.T(usersTable).As("u"))

	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("could not count users: %w", err)
	}

	var rows []PgUserView
	if err := ds.Select(userColumns(viewer)...).
		Order(goqu.I("u.username").Asc(), goqu.I("u.id").Asc()).
		Offset(page.Offset).
		Limit(page.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return storage.UserPage{
		Users: pgUsersToDomain(rows),
		Count: count,
	}, nil
}

// Subscribe reports false when the subscription already existed. Unknown
// authors wrap storage.ErrReferenced.
func (p *PgSQL) Subscribe(ctx context.Context, userID, authorID domain.UserID) (bool, error) {
	res, err := p.Builder.Insert(subscriptionsTable).
		Rows(goqu.Record{
			"user_id":   uuid.UUID(userID),
			"author_id": uuid.UUID(authorID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store subscription: %w", translateError(err))
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (p *PgSQL) Unsubscribe(ctx context.Context, userID, authorID domain.UserID) (bool, error) {
	res, err := p.Builder.Delete(subscriptionsTable).
		Where(
			goqu.C("user_id").Eq(uuid.UUID(userID)),
			goqu.C("author_id").Eq(uuid.UUID(authorID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete subscription: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// Subscriptions lists the authors userID follows, most recent subscription first.
func (p *PgSQL) Subscriptions(ctx context.Context, userID domain.UserID, page storage.Page) (storage.UserPage, error) {
	ds := p.Builder.From(goqu.T(subscriptionsTable).As("s")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("s.author_id")))).
		Where(goqu.I("s.user_id").Eq(uuid.UUID(userID)))

	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.UserPage{}, fmt.Errorf("could not count subscriptions: %w", err)
	}

	var rows []PgUserView
	if err := ds.Select(
		goqu.I("u.id").As("id"),
		goqu.I("u.email").As("email"),
		goqu.I("u.username").As("username"),
		goqu.I("u.first_name").As("first_name"),
		goqu.I("u.last_name").As("last_name"),
		goqu.I("u.created_at").As("created_at"),
		goqu.L("TRUE").As("is_subscribed"),
	).
		Order(goqu.I("s.created_at").Desc(), goqu.I("u.id").Asc()).
		Offset(page.Offset).
		Limit(page.Limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not fetch subscriptions from pg: %w", err)
	}

	return storage.UserPage{
		Users: pgUsersToDomain(rows),
		Count: count,
	}, nil
}
