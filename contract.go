//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package traveloracle

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"

	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/conversation"
)

type Authenticator interface {
	Authenticate(r *http.Request) (*auth.Token, error)
}

type UserRepository interface {
	Create(ctx context.Context, u contract.User, profileImage []byte) (*contract.User, error)
	Update(ctx context.Context, u contract.User, profileImage []byte) (*contract.User, error)
	Get(ctx context.Context, uid string) (*contract.User, error)
	All(ctx context.Context) ([]*contract.User, error)
}

type ConversationService interface {
	Between(ctx context.Context, thisUID, thatUID string) (*contract.Conversation, error)
	Participating(ctx context.Context, id, uid string) (*contract.Conversation, error)
	AddMessage(ctx context.Context, conversationID string, msg contract.Message) (*contract.Message, error)
	AddImageMessage(ctx context.Context, conversationID string, msg contract.Message, image []byte) (*contract.Message, error)
	Messages(ctx context.Context, conversationID string) ([]*contract.Message, error)
	Watch(ctx context.Context, uid string) (*conversation.Feed, error)
}

type CatalogService interface {
	Create(ctx context.Context, store contract.Store, images [][]byte) (*contract.Store, error)
	Store(ctx context.Context, id string) (*contract.Store, error)
	ByCategory(ctx context.Context, category string) ([]*contract.Store, error)
	All(ctx context.Context) ([]*contract.Store, error)
	Saved(ctx context.Context, u *contract.User) ([]*contract.Store, error)
	AddSaved(ctx context.Context, uid, storeID string) ([]string, error)
	RemoveSaved(ctx context.Context, uid, storeID string) ([]string, error)
}

type ReviewService interface {
	Add(ctx context.Context, r contract.Review, store *contract.Store) (*contract.Review, error)
}
