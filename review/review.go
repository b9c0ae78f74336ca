// Package review stores reviews under the store they are about.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klipach/traveloracle/catalog"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/log"
)

var errMissingStore = fmt.Errorf("%w: review needs a store", contract.ErrInvalid)

// Collection is the review subcollection of a store.
func Collection(storeID string) docstore.Collection {
	return catalog.Ref(storeID).Sub(contract.ReviewsSubcollection)
}

type Service struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Service {
	return &Service{docs: docs}
}

// Add writes r as a new review of store with a store assigned createdAt.
// Store aggregates are not touched.
func (s *Service) Add(ctx context.Context, r contract.Review, store *contract.Store) (*contract.Review, error) {
	if store == nil || store.ID == "" {
		return nil, errMissingStore
	}
	ref, err := s.docs.NewRef(Collection(store.ID))
	if err != nil {
		return nil, fmt.Errorf("add review to %q: %w", store.ID, err)
	}
	r.ID = ref.ID
	r.StoreID = store.ID
	r.CreatedAt = time.Time{}

	if err := s.docs.Set(ctx, ref, &r); err != nil {
		return nil, fmt.Errorf("add review to %s: %w", store.ID, err)
	}
	log.LoggerFromContext(ctx).Info("review added",
		slog.String(log.StoreIDField, store.ID),
		slog.String(log.UserIDField, r.CreatedBy),
	)
	return &r, nil
}
