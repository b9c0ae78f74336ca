package traveloracle

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klipach/traveloracle/blob"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/conversation"
	"github.com/klipach/traveloracle/docstore/memstore"
)

func readEvent(t *testing.T, r *bufio.Reader) contract.ConversationsEvent {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		data, ok := strings.CutPrefix(strings.TrimRight(line, "\n"), "data: ")
		if !ok {
			continue
		}
		var event contract.ConversationsEvent
		require.NoError(t, json.Unmarshal([]byte(data), &event))
		return event
	}
}

func uuids(event contract.ConversationsEvent) []string {
	out := []string{}
	for _, c := range event.Conversations {
		out = append(out, c.UUID)
	}
	return out
}

func TestConversationsStream(t *testing.T) {
	docs := memstore.New()
	require.NoError(t, docs.Put(conversation.Ref("c1"), &contract.Conversation{
		UUID: "c1", CreatedBy: "u1", ParticipantIDs: []string{"u1", "u2"},
	}))
	require.NoError(t, docs.Put(conversation.Ref("other"), &contract.Conversation{
		UUID: "other", CreatedBy: "u3", ParticipantIDs: []string{"u3", "u4"},
	}))

	f := newAPIFixture(t)
	f.auth.EXPECT().Authenticate(gomock.Any()).Return(&auth.Token{UID: "u1"}, nil)
	f.api.conversations = conversation.New(docs, blob.NewMemory())

	server := httptest.NewServer(http.HandlerFunc(f.api.Conversations))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)

	assert.Equal(t, []string{"c1"}, uuids(readEvent(t, r)))

	require.NoError(t, docs.Put(conversation.Ref("c2"), &contract.Conversation{
		UUID: "c2", CreatedBy: "u5", ParticipantIDs: []string{"u5", "u1"},
	}))
	assert.Equal(t, []string{"c1", "c2"}, uuids(readEvent(t, r)))
}

func TestConversationsStreamWatchFailure(t *testing.T) {
	f := newAPIFixture(t)
	f.signedIn("u1")
	f.conversations.EXPECT().Watch(gomock.Any(), "u1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	f.api.Conversations(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
