// Package conversation manages two-party conversations, their messages and
// the live conversation list of a user.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/klipach/traveloracle/blob"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/fanout"
	"github.com/klipach/traveloracle/log"
	"github.com/klipach/traveloracle/user"
)

const Collection = docstore.Collection(contract.ConversationsCollection)

var (
	ErrSelfConversation = errors.New("cannot start a conversation with yourself")
	ErrNotParticipant   = errors.New("not a participant of the conversation")
)

func Ref(id string) docstore.Ref {
	return Collection.Doc(id)
}

// MessagesCollection is the message subcollection of a conversation.
func MessagesCollection(conversationID string) docstore.Collection {
	return Ref(conversationID).Sub(contract.MessagesSubcollection)
}

type Service struct {
	docs  docstore.Store
	blobs blob.Store
}

func New(docs docstore.Store, blobs blob.Store) *Service {
	return &Service{docs: docs, blobs: blobs}
}

// Conversations fetches ids concurrently and returns them in input order.
// Missing and malformed documents are skipped; any other failure fails
// the whole call.
func (s *Service) Conversations(ctx context.Context, ids []string) ([]*contract.Conversation, error) {
	logger := log.LoggerFromContext(ctx)
	results, err := fanout.All(ctx, len(ids), func(ctx context.Context, i int) (*contract.Conversation, error) {
		snap, err := s.docs.Get(ctx, Ref(ids[i]))
		if errors.Is(err, docstore.ErrNotFound) {
			logger.Warn("conversation not found", slog.String(log.ConversationIDField, ids[i]))
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		c, err := docstore.Decode[contract.Conversation](snap)
		if err != nil {
			logger.Warn("skipping malformed conversation", slog.String(log.ConversationIDField, ids[i]), log.Err(err))
			return nil, nil
		}
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}

	conversations := make([]*contract.Conversation, 0, len(results))
	for _, c := range results {
		if c != nil {
			conversations = append(conversations, c)
		}
	}
	return conversations, nil
}

// Get returns a single conversation.
func (s *Service) Get(ctx context.Context, id string) (*contract.Conversation, error) {
	snap, err := s.docs.Get(ctx, Ref(id))
	if err != nil {
		return nil, err
	}
	return docstore.Decode[contract.Conversation](snap)
}

// Participating returns the conversation when uid takes part in it,
// ErrNotParticipant otherwise.
func (s *Service) Participating(ctx context.Context, id, uid string) (*contract.Conversation, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(uid) {
		return nil, fmt.Errorf("%w: %s", ErrNotParticipant, id)
	}
	return c, nil
}

// Between returns the conversation of thisUID that includes thatUID,
// creating it when there is none. The lookup and the creation are not
// atomic: two concurrent calls for the same pair may both create one.
func (s *Service) Between(ctx context.Context, thisUID, thatUID string) (*contract.Conversation, error) {
	if thisUID == thatUID {
		return nil, ErrSelfConversation
	}

	snap, err := s.docs.Get(ctx, user.Ref(thisUID))
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", thisUID, err)
	}
	u, err := docstore.Decode[contract.User](snap)
	if err != nil {
		return nil, err
	}

	conversations, err := s.Conversations(ctx, u.ConversationIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range conversations {
		if c.HasParticipant(thatUID) {
			return c, nil
		}
	}
	return s.Create(ctx, thisUID, thatUID)
}

// Create writes a new conversation and adds its id to both users in one
// transaction.
func (s *Service) Create(ctx context.Context, creatorID, participantID string) (*contract.Conversation, error) {
	if creatorID == participantID {
		return nil, ErrSelfConversation
	}
	c := &contract.Conversation{
		UUID:           uuid.NewString(),
		CreatedBy:      creatorID,
		ParticipantIDs: []string{creatorID, participantID},
	}

	err := s.docs.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		if err := tx.Set(Ref(c.UUID), c); err != nil {
			return err
		}
		for _, uid := range c.ParticipantIDs {
			err := tx.Update(user.Ref(uid), docstore.Update{
				Field: contract.ConversationIDsField,
				Value: docstore.ArrayUnion(c.UUID),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	log.LoggerFromContext(ctx).Info("conversation created",
		slog.String(log.ConversationIDField, c.UUID),
		slog.String(log.UserIDField, creatorID),
	)
	return c, nil
}

// AddMessage stores msg and updates the conversation summary in one
// transaction. It fails when the conversation does not exist. A message
// without a timestamp gets the commit time, which is read back.
func (s *Service) AddMessage(ctx context.Context, conversationID string, msg contract.Message) (*contract.Message, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	ref, err := s.docs.NewRef(MessagesCollection(conversationID))
	if err != nil {
		return nil, fmt.Errorf("add message to %q: %w", conversationID, err)
	}
	msg.UUID = ref.ID

	serverTime := msg.Timestamp.IsZero()
	var lastTimestamp any = docstore.ServerTimestamp
	if !serverTime {
		lastTimestamp = msg.Timestamp
	}

	err = s.docs.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		if err := tx.Set(ref, &msg); err != nil {
			return err
		}
		return tx.Update(Ref(conversationID),
			docstore.Update{Field: contract.LastMessageTextField, Value: msg.Content},
			docstore.Update{Field: contract.LastMessageTimestampField, Value: lastTimestamp},
		)
	})
	if err != nil {
		return nil, fmt.Errorf("add message to %s: %w", conversationID, err)
	}
	if !serverTime {
		return &msg, nil
	}

	stored, err := s.readMessage(ctx, ref)
	if err != nil {
		log.LoggerFromContext(ctx).Warn("message timestamp not read back",
			slog.String(log.ConversationIDField, conversationID),
			log.Err(err),
		)
		return &msg, nil
	}
	return stored, nil
}

func (s *Service) readMessage(ctx context.Context, ref docstore.Ref) (*contract.Message, error) {
	snap, err := s.docs.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return docstore.Decode[contract.Message](snap)
}

// AddImageMessage uploads image first and then adds msg pointing at it. A
// failed write after the upload leaves the image orphaned.
func (s *Service) AddImageMessage(ctx context.Context, conversationID string, msg contract.Message, image []byte) (*contract.Message, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	url, err := s.blobs.Upload(ctx, blob.ConversationImages, blob.ImageKey(uuid.NewString()), image)
	if err != nil {
		return nil, err
	}
	msg.ImageURL = url
	return s.AddMessage(ctx, conversationID, msg)
}

// Messages returns the messages of a conversation oldest first, skipping
// malformed ones.
func (s *Service) Messages(ctx context.Context, conversationID string) ([]*contract.Message, error) {
	snaps, err := s.docs.Query(ctx, docstore.All(MessagesCollection(conversationID)))
	if err != nil {
		return nil, fmt.Errorf("load messages of %s: %w", conversationID, err)
	}

	logger := log.LoggerFromContext(ctx)
	messages := make([]*contract.Message, 0, len(snaps))
	for _, snap := range snaps {
		m, err := docstore.Decode[contract.Message](snap)
		if err != nil {
			logger.Warn("skipping malformed message",
				slog.String(log.ConversationIDField, conversationID),
				slog.String(log.DocumentField, snap.Ref.ID),
				log.Err(err),
			)
			continue
		}
		messages = append(messages, m)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}
