// Package traveloracle exposes the sync layer to the app as Cloud Functions
// HTTP handlers. Every call carries a Firebase ID token.
package traveloracle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"firebase.google.com/go/v4/auth"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	authn "github.com/klipach/traveloracle/auth"
	"github.com/klipach/traveloracle/catalog"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/conversation"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/log"
)

const (
	bodyLogField = "body"
	pathLogField = "path"

	maxBodySize = 32 << 20
)

var errBadRequest = errors.New("bad request")

type Deps struct {
	Auth          Authenticator
	Users         UserRepository
	Conversations ConversationService
	Stores        CatalogService
	Reviews       ReviewService
	Logger        *slog.Logger
	ProjectID     string
}

type API struct {
	auth          Authenticator
	users         UserRepository
	conversations ConversationService
	stores        CatalogService
	reviews       ReviewService
	logger        *slog.Logger
	projectID     string
}

func New(d Deps) *API {
	logger := d.Logger
	if logger == nil {
		logger = log.LoggerFromContext(context.Background())
	}
	return &API{
		auth:          d.Auth,
		users:         d.Users,
		conversations: d.Conversations,
		stores:        d.Stores,
		reviews:       d.Reviews,
		logger:        logger,
		projectID:     d.ProjectID,
	}
}

// Register binds every handler to its function name.
func (a *API) Register() {
	functions.HTTP("Users", a.Users)
	functions.HTTP("Profile", a.Profile)
	functions.HTTP("Conversations", a.Conversations)
	functions.HTTP("Conversation", a.Conversation)
	functions.HTTP("Messages", a.Messages)
	functions.HTTP("Stores", a.Stores)
	functions.HTTP("SavedStores", a.SavedStores)
	functions.HTTP("Reviews", a.Reviews)
}

// begin checks the method and the caller's token and returns a context
// carrying a logger scoped to the caller. It has already answered the
// request when ok is false.
func (a *API) begin(w http.ResponseWriter, r *http.Request, methods ...string) (ctx context.Context, token *auth.Token, ok bool) {
	ctx = r.Context()
	logger := a.logger.With(
		slog.String(log.MethodField, r.Method),
		slog.String(pathLogField, r.URL.Path),
	)
	if traceID := log.TraceIDFromRequest(r, a.projectID); traceID != "" {
		ctx = log.WithTraceID(ctx, traceID)
	}

	if !slices.Contains(methods, r.Method) {
		logger.ErrorContext(ctx, "invalid method: "+r.Method)
		http.Error(w, "Method Not Implemented", http.StatusNotImplemented)
		return nil, nil, false
	}

	token, err := a.auth.Authenticate(r)
	if err != nil {
		logger.ErrorContext(ctx, "error while authenticating", log.Err(err))
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, nil, false
	}
	logger = logger.With(slog.String(log.UserIDField, token.UID))
	return log.WithLogger(ctx, logger), token, true
}

func readJSON(ctx context.Context, r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.LoggerFromContext(ctx).DebugContext(ctx, "undecodable request", slog.String(bodyLogField, string(data)))
		return errors.Join(errBadRequest, err)
	}
	return nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, w, "error while encoding response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.LoggerFromContext(ctx).ErrorContext(ctx, "error while writing response", log.Err(err))
	}
}

// writeError logs err with msg and answers with the status err maps to.
// The body never carries err itself.
func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	logger := log.LoggerFromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, log.Err(err))
	} else {
		logger.WarnContext(ctx, msg, log.Err(err))
	}
	http.Error(w, http.StatusText(status), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, docstore.ErrDecode):
		return http.StatusInternalServerError
	case errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, authn.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, conversation.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, catalog.ErrExists):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, contract.ErrInvalid),
		errors.Is(err, docstore.ErrInvalidRef),
		errors.Is(err, conversation.ErrSelfConversation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
