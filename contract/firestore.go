package contract

import (
	"errors"
	"fmt"
	"time"
)

const (
	UsersCollection         = "Users"
	ConversationsCollection = "Conversations"
	StoresCollection        = "Stores"
	MessagesSubcollection   = "Messages"
	ReviewsSubcollection    = "Reviews"

	UIDField                  = "uid"
	ConversationIDsField      = "conversationIds"
	SavedStoreIDsField        = "savedStoreIds"
	ParticipantIDsField       = "participantIds"
	LastMessageTextField      = "lastMessageText"
	LastMessageTimestampField = "lastMessageTimestamp"
	CategoryField             = "category"
	EmailField                = "email"
	DisplayNameField          = "displayName"
	ProfileImageURLField      = "profileImageURL"
)

// ErrInvalid wraps every shape validation failure.
var ErrInvalid = errors.New("invalid document")

var (
	errMissingUID      = fmt.Errorf("%w: missing uid", ErrInvalid)
	errMissingUUID     = fmt.Errorf("%w: missing uuid", ErrInvalid)
	errNoParticipants  = fmt.Errorf("%w: no participants", ErrInvalid)
	errMissingStoreID  = fmt.Errorf("%w: missing store id", ErrInvalid)
	errMissingSenderID = fmt.Errorf("%w: missing sender id", ErrInvalid)
)

// User is a Users document. ProfileImageURL holds the storage download url
// of the profile image.
type User struct {
	UID             string    `firestore:"uid" json:"uid"`
	Email           string    `firestore:"email" json:"email"`
	DisplayName     string    `firestore:"displayName" json:"displayName"`
	ConversationIDs []string  `firestore:"conversationIds" json:"conversationIds"`
	ProfileImageURL string    `firestore:"profileImageURL,omitempty" json:"profileImageURL,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	SavedStoreIDs   []string  `firestore:"savedStoreIds" json:"savedStoreIds"`
}

func (u *User) Validate() error {
	if u.UID == "" {
		return errMissingUID
	}
	return nil
}

type Conversation struct {
	UUID                 string     `firestore:"uuid" json:"uuid"`
	CreatedBy            string     `firestore:"createdBy" json:"createdBy"`
	ParticipantIDs       []string   `firestore:"participantIds" json:"participantIds"`
	LastMessageText      string     `firestore:"lastMessageText,omitempty" json:"lastMessageText,omitempty"`
	LastMessageTimestamp *time.Time `firestore:"lastMessageTimestamp,omitempty" json:"lastMessageTimestamp,omitempty"`
}

func (c *Conversation) Validate() error {
	if c.UUID == "" {
		return errMissingUUID
	}
	if len(c.ParticipantIDs) == 0 {
		return errNoParticipants
	}
	return nil
}

// HasParticipant reports whether uid takes part in the conversation.
func (c *Conversation) HasParticipant(uid string) bool {
	for _, id := range c.ParticipantIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// Message lives in the Messages subcollection of its conversation.
// Timestamp is filled by the server when left zero.
type Message struct {
	UUID      string    `firestore:"uuid" json:"uuid"`
	SenderID  string    `firestore:"senderId" json:"senderId"`
	Content   string    `firestore:"content" json:"content"`
	ImageURL  string    `firestore:"imageURL,omitempty" json:"imageURL,omitempty"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}

func (m *Message) Validate() error {
	if m.SenderID == "" {
		return errMissingSenderID
	}
	return nil
}

type Store struct {
	ID          string    `firestore:"id" json:"id"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	CreatedBy   string    `firestore:"createdBy" json:"createdBy"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	Description string    `firestore:"description" json:"description"`
	Price       string    `firestore:"price" json:"price"`
	Category    string    `firestore:"category" json:"category"`
	Images      []string  `firestore:"images" json:"images"`
	Tag         Tag       `firestore:"tag" json:"tag"`
}

func (s *Store) Validate() error {
	if s.ID == "" {
		return errMissingStoreID
	}
	return nil
}

type Tag struct {
	Price              string `firestore:"price" json:"price"`
	GoodForBreakfast   string `firestore:"goodForBreakfast" json:"goodForBreakfast"`
	GoodForLunch       string `firestore:"goodForLunch" json:"goodForLunch"`
	GoodForDinner      string `firestore:"goodForDinner" json:"goodForDinner"`
	TakesReservations  string `firestore:"takesReservations" json:"takesReservations"`
	VegetarianFriendly string `firestore:"vegetarianFriendly" json:"vegetarianFriendly"`
	Cuisine            string `firestore:"cuisine" json:"cuisine"`
	LiveMusic          string `firestore:"liveMusic" json:"liveMusic"`
	OutdoorSeating     string `firestore:"outdoorSeating" json:"outdoorSeating"`
	FreeWIFI           string `firestore:"freeWIFI" json:"freeWIFI"`
}

type Review struct {
	ID        string    `firestore:"id" json:"id"`
	StoreID   string    `firestore:"storeId" json:"storeId"`
	CreatedBy string    `firestore:"createdBy" json:"createdBy"`
	Rating    int       `firestore:"rating" json:"rating"`
	Content   string    `firestore:"content" json:"content"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
