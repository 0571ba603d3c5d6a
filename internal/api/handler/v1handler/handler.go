package v1handler

import (
	"context"
	"errors"
	"foodgram/internal/catalog"
	"foodgram/internal/recipes"
	"foodgram/internal/users"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"foodgram/pkg/shoppinglist"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Deps are the services backing the v1 API.
type Deps struct {
	Catalog catalog.Catalog
	Recipes recipes.Recipes
	Users   users.Users
	// Renderers are the available shopping list formats.
	Renderers []shoppinglist.Renderer
}

// Options tune request handling.
type Options struct {
	// PageSize is the default page size of paginated listings.
	PageSize uint
	// MaxPageSize caps the limit query parameter.
	MaxPageSize uint
	// MaxBodyBytes limits request bodies. Zero means unlimited.
	MaxBodyBytes int64
	// DefaultFormat is the shopping list format used when none is requested.
	DefaultFormat string
}

type Handler struct {
	deps      Deps
	options   Options
	renderers map[string]shoppinglist.Renderer
}

func New(deps Deps, options Options) *Handler {
	if options.PageSize == 0 {
		options.PageSize = DefaultPageSize
	}
	if options.MaxPageSize == 0 {
		options.MaxPageSize = MaxPageSize
	}

	renderers := make(map[string]shoppinglist.Renderer, len(deps.Renderers))
	for _, r := range deps.Renderers {
		renderers[r.Format()] = r
	}

	return &Handler{deps: deps, options: options, renderers: renderers}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Fields  serrors.Fields `json:"fields,omitempty"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "authentication credentials were not provided"},
	serrors.ErrForbidden:    {http.StatusForbidden, "you do not have permission to perform this action"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps err to a response. Errors without a semantic kind, and
// ErrInternal, become a 500 that does not expose the cause.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var (
		kind    serrors.Kind
		message string
		fields  serrors.Fields
	)
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Kind() != nil {
		kind, message, fields = sErr.Kind(), sErr.Message(), sErr.Fields()
	} else {
		_ = errors.As(err, &kind)
	}
	if kind == nil && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}

	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}
	logger.Debug(ctx, "request rejected", zap.Error(err))

	if message == "" {
		message = ks.message
	}

	return &ErrorStatusCode{
		StatusCode: ks.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
			Fields:  fields,
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.Error(r.Context(), "could not marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

// decodeJSON reads the request body into dst.
func (h Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := io.Reader(r.Body)
	if h.options.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes)
	}

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return serrors.With(serrors.ErrBadRequest, "request body is too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
