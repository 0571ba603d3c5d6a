package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// recipesLimit parses the recipes_limit parameter. Zero means no limit.
func recipesLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("recipes_limit")
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.InvalidField("recipes_limit", "must be a non-negative integer")
	}

	return uint(n), nil
}

func userIDParam(r *http.Request) (domain.UserID, error) {
	id, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.UserID{}, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return id, nil
}

// ListUsers returns a page of users.
func (h Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Users.List(r.Context(), GetUserIDFromContext(r.Context()), page.storagePage())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := paginate(r, page, res.Count, mapSlice(res.Users, DomainUserToV1))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

// GetUser returns a user by id.
func (h Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.deps.Users.Get(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainUserToV1(user))
}

// Me returns the caller.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := GetUserIDFromContext(r.Context())
	user, err := h.deps.Users.Get(r.Context(), userID, userID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainUserToV1(user))
}

// Subscriptions returns a page of the authors the caller follows.
func (h Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := recipesLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Users.Subscriptions(r.Context(), GetUserIDFromContext(r.Context()), page.storagePage(), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := paginate(r, page, res.Count, mapSlice(res.Subscriptions, DomainSubscriptionToV1))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Subscribe makes the caller follow a user.
func (h Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := recipesLimit(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	sub, err := h.deps.Users.Subscribe(r.Context(), GetUserIDFromContext(r.Context()), authorID, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainSubscriptionToV1(sub))
}

// Unsubscribe makes the caller stop following a user.
func (h Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Users.Unsubscribe(r.Context(), GetUserIDFromContext(r.Context()), authorID); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
