package conversation

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/log"
)

// Changes is one decoded listener batch.
type Changes struct {
	Added    []*contract.Conversation
	Modified []*contract.Conversation
	Removed  []string
}

// Reduce applies changes to list and returns the new list. Added
// conversations are appended, modified ones replace the entry with the
// same uuid and are dropped when there is none. Removals are not applied,
// a conversation stays in the list once seen.
func Reduce(list []*contract.Conversation, changes Changes) []*contract.Conversation {
	out := slices.Clone(list)
	out = append(out, changes.Added...)
	for _, modified := range changes.Modified {
		i := slices.IndexFunc(out, func(c *contract.Conversation) bool {
			return c.UUID == modified.UUID
		})
		if i >= 0 {
			out[i] = modified
		}
	}
	return out
}

// Feed is the live conversation list of one user.
type Feed struct {
	listener *docstore.Listener
	changes  chan struct{}

	mu            sync.Mutex
	conversations []*contract.Conversation
}

// Watch subscribes to the conversations uid takes part in. The feed must
// be stopped by its owner.
func (s *Service) Watch(ctx context.Context, uid string) (*Feed, error) {
	f := &Feed{changes: make(chan struct{}, 1)}
	logger := log.LoggerFromContext(ctx).With(slog.String(log.UserIDField, uid))
	q := docstore.Where(Collection, contract.ParticipantIDsField, docstore.OpArrayContains, uid)

	listener, err := s.docs.Subscribe(ctx, q, func(b docstore.Batch) {
		f.apply(logger, b)
	})
	if err != nil {
		return nil, err
	}
	f.listener = listener
	return f, nil
}

func (f *Feed) apply(logger *slog.Logger, b docstore.Batch) {
	changes := Changes{
		Added:    decodeAll(logger, b.Added),
		Modified: decodeAll(logger, b.Modified),
	}
	for _, snap := range b.Removed {
		changes.Removed = append(changes.Removed, snap.Ref.ID)
	}

	f.mu.Lock()
	f.conversations = Reduce(f.conversations, changes)
	count := len(f.conversations)
	f.mu.Unlock()

	logger.Debug("conversation feed updated", slog.Int(log.CountField, count))
	select {
	case f.changes <- struct{}{}:
	default:
	}
}

func decodeAll(logger *slog.Logger, snaps []*docstore.Snapshot) []*contract.Conversation {
	var out []*contract.Conversation
	for _, snap := range snaps {
		c, err := docstore.Decode[contract.Conversation](snap)
		if err != nil {
			logger.Warn("skipping malformed conversation",
				slog.String(log.ConversationIDField, snap.Ref.ID),
				log.Err(err),
			)
			continue
		}
		out = append(out, c)
	}
	return out
}

// Conversations returns a copy of the current list.
func (f *Feed) Conversations() []contract.Conversation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]contract.Conversation, 0, len(f.conversations))
	for _, c := range f.conversations {
		out = append(out, *c)
	}
	return out
}

// Changes receives a value after every delivered batch. Signals that are
// not consumed in time are coalesced.
func (f *Feed) Changes() <-chan struct{} {
	return f.changes
}

func (f *Feed) Stop() {
	f.listener.Stop()
}

// Done is closed once the feed stops receiving updates.
func (f *Feed) Done() <-chan struct{} {
	return f.listener.Done()
}

func (f *Feed) Err() error {
	return f.listener.Err()
}
