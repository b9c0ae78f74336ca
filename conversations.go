package traveloracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/conversation"
	"github.com/klipach/traveloracle/filter"
	"github.com/klipach/traveloracle/log"
)

// Conversations streams the caller's conversation list as server-sent
// events, one event per change, until the client goes away.
func (a *API) Conversations(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodGet)
	if !ok {
		return
	}
	logger := log.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming unsupported!")
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	feed, err := a.conversations.Watch(ctx, token.UID)
	if err != nil {
		writeError(ctx, w, "error while watching conversations", err)
		return
	}
	defer feed.Stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "conversation stream closed by client")
			return
		case <-feed.Done():
			if err := feed.Err(); err != nil {
				logger.ErrorContext(ctx, "conversation feed failed", log.Err(err))
			}
			return
		case <-feed.Changes():
			if err := writeEvent(w, feed); err != nil {
				logger.ErrorContext(ctx, "error while writing event", log.Err(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, feed *conversation.Feed) error {
	data, err := json.Marshal(contract.ConversationsEvent{Conversations: feed.Conversations()})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

// Conversation returns the caller's conversation with the requested
// participant, starting one when there is none.
func (a *API) Conversation(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req contract.ConversationRequest
	if err := readJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, "error while decoding request", err)
		return
	}
	if req.ParticipantID == "" {
		writeError(ctx, w, "missing participant", fmt.Errorf("%w: participantId", errBadRequest))
		return
	}

	c, err := a.conversations.Between(ctx, token.UID, req.ParticipantID)
	if err != nil {
		writeError(ctx, w, "error while opening conversation", err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, c)
}

// Messages lists (GET) or sends (POST) messages of a conversation the
// caller takes part in.
func (a *API) Messages(w http.ResponseWriter, r *http.Request) {
	ctx, token, ok := a.begin(w, r, http.MethodGet, http.MethodPost)
	if !ok {
		return
	}

	if r.Method == http.MethodGet {
		id := r.URL.Query().Get("conversationId")
		if !a.participating(ctx, w, id, token.UID) {
			return
		}
		messages, err := a.conversations.Messages(ctx, id)
		if err != nil {
			writeError(ctx, w, "error while loading messages", err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, messages)
		return
	}

	var req contract.MessageRequest
	if err := readJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, "error while decoding request", err)
		return
	}
	if !a.participating(ctx, w, req.ConversationID, token.UID) {
		return
	}
	ctx = log.WithLogger(ctx, log.LoggerFromContext(ctx).With(
		slog.String(log.ConversationIDField, req.ConversationID),
	))

	msg := contract.Message{
		SenderID: token.UID,
		Content:  filter.Text(req.Content),
	}
	var (
		sent *contract.Message
		err  error
	)
	if len(req.Image) > 0 {
		sent, err = a.conversations.AddImageMessage(ctx, req.ConversationID, msg, req.Image)
	} else {
		sent, err = a.conversations.AddMessage(ctx, req.ConversationID, msg)
	}
	if err != nil {
		writeError(ctx, w, "error while sending message", err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, sent)
}

func (a *API) participating(ctx context.Context, w http.ResponseWriter, id, uid string) bool {
	if id == "" {
		writeError(ctx, w, "missing conversation", fmt.Errorf("%w: conversationId", errBadRequest))
		return false
	}
	if _, err := a.conversations.Participating(ctx, id, uid); err != nil {
		writeError(ctx, w, "error while checking participation", err)
		return false
	}
	return true
}
