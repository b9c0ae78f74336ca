package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klipach/traveloracle/catalog"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/docstore/memstore"
)

func TestAdd(t *testing.T) {
	docs := memstore.New()
	ctx := context.Background()
	store := &contract.Store{ID: "s1", DisplayName: "Cafe"}
	require.NoError(t, docs.Put(catalog.Ref("s1"), store))

	added, err := New(docs).Add(ctx, contract.Review{CreatedBy: "u1", Rating: 4, Content: "nice"}, store)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "s1", added.StoreID)

	snaps, err := docs.Query(ctx, docstore.All(Collection("s1")))
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	got, err := docstore.Decode[contract.Review](snaps[0])
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "nice", got.Content)
	assert.False(t, got.CreatedAt.IsZero())

	raw, ok := docs.Data(catalog.Ref("s1"))
	require.True(t, ok)
	assert.Equal(t, "Cafe", raw["displayName"], "the store itself is not rewritten")
}

func TestAddWithoutStore(t *testing.T) {
	docs := memstore.New()
	_, err := New(docs).Add(context.Background(), contract.Review{Content: "x"}, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, docs.Stats().Sets)
}

func TestAddIgnoresClientCreatedAt(t *testing.T) {
	docs := memstore.New()
	ctx := context.Background()
	store := &contract.Store{ID: "s1"}
	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	added, err := New(docs).Add(ctx, contract.Review{CreatedBy: "u1", Rating: 1, CreatedAt: past}, store)
	require.NoError(t, err)

	snap, err := docs.Get(ctx, Collection("s1").Doc(added.ID))
	require.NoError(t, err)
	got, err := docstore.Decode[contract.Review](snap)
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NotEqual(t, past, got.CreatedAt)
}
