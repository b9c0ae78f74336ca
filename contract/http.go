package contract

// Images travel as base64 strings, encoding/json maps them onto []byte.

type ProfileRequest struct {
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	ProfileImage []byte `json:"profileImage,omitempty"`
}

type ConversationRequest struct {
	ParticipantID string `json:"participantId"`
}

type MessageRequest struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
	Image          []byte `json:"image,omitempty"`
}

type StoreRequest struct {
	Store  Store    `json:"store"`
	Images [][]byte `json:"images"`
}

type StoreResponse struct {
	Store
	DescriptionHTML string `json:"descriptionHtml"`
}

type SavedStoreRequest struct {
	StoreID string `json:"storeId"`
}

type SavedStoresResponse struct {
	SavedStoreIDs []string `json:"savedStoreIds"`
}

type ReviewRequest struct {
	StoreID string `json:"storeId"`
	Review  Review `json:"review"`
}

// ConversationsEvent is one server-sent event of the conversation stream.
type ConversationsEvent struct {
	Conversations []Conversation `json:"conversations"`
}
