// Package catalog manages stores, their images and the stores users saved.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/klipach/traveloracle/blob"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/fanout"
	"github.com/klipach/traveloracle/log"
	"github.com/klipach/traveloracle/user"
)

const Collection = docstore.Collection(contract.StoresCollection)

func Ref(id string) docstore.Ref {
	return Collection.Doc(id)
}

// ErrExists is returned when a store with the requested id is already
// there. Stores are never overwritten.
var ErrExists = errors.New("store already exists")

type Service struct {
	docs  docstore.Store
	blobs blob.Store
}

func New(docs docstore.Store, blobs blob.Store) *Service {
	return &Service{docs: docs, blobs: blobs}
}

// Create uploads images concurrently and writes the store referencing them
// in input order. The first failed upload is returned right away and no
// document is written; images that did upload are not removed. The write
// fails with ErrExists when the id is taken. createdAt is always assigned
// by the store.
func (s *Service) Create(ctx context.Context, store contract.Store, images [][]byte) (*contract.Store, error) {
	if store.ID == "" {
		store.ID = uuid.NewString()
	}
	store.CreatedAt = time.Time{}

	urls, err := fanout.FailFast(ctx, len(images), func(ctx context.Context, i int) (string, error) {
		return s.blobs.Upload(ctx, blob.StoreImages, blob.ImageKey(uuid.NewString()), images[i])
	})
	if err != nil {
		return nil, err
	}
	store.Images = urls

	ref := Ref(store.ID)
	err = s.docs.RunTransaction(ctx, func(ctx context.Context, tx docstore.Tx) error {
		_, err := tx.Get(ref)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrExists, store.ID)
		}
		if !errors.Is(err, docstore.ErrNotFound) {
			return err
		}
		return tx.Set(ref, &store)
	})
	if err != nil {
		return nil, fmt.Errorf("create store %s: %w", store.ID, err)
	}
	log.LoggerFromContext(ctx).Info("store created",
		slog.String(log.StoreIDField, store.ID),
		slog.Int(log.CountField, len(urls)),
	)
	return &store, nil
}

func (s *Service) Store(ctx context.Context, id string) (*contract.Store, error) {
	snap, err := s.docs.Get(ctx, Ref(id))
	if err != nil {
		return nil, err
	}
	return docstore.Decode[contract.Store](snap)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]*contract.Store, error) {
	return s.query(ctx, docstore.Where(Collection, contract.CategoryField, docstore.OpEqual, category))
}

func (s *Service) All(ctx context.Context) ([]*contract.Store, error) {
	return s.query(ctx, docstore.All(Collection))
}

func (s *Service) query(ctx context.Context, q docstore.Query) ([]*contract.Store, error) {
	snaps, err := s.docs.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	logger := log.LoggerFromContext(ctx)
	stores := make([]*contract.Store, 0, len(snaps))
	for _, snap := range snaps {
		st, err := docstore.Decode[contract.Store](snap)
		if err != nil {
			logger.Warn("skipping malformed store", slog.String(log.StoreIDField, snap.Ref.ID), log.Err(err))
			continue
		}
		stores = append(stores, st)
	}
	return stores, nil
}

// Saved returns the stores u saved, in list order. Missing and malformed
// stores are skipped.
func (s *Service) Saved(ctx context.Context, u *contract.User) ([]*contract.Store, error) {
	if len(u.SavedStoreIDs) == 0 {
		return []*contract.Store{}, nil
	}

	ids := u.SavedStoreIDs
	logger := log.LoggerFromContext(ctx)
	results, err := fanout.All(ctx, len(ids), func(ctx context.Context, i int) (*contract.Store, error) {
		st, err := s.Store(ctx, ids[i])
		switch {
		case errors.Is(err, docstore.ErrNotFound), errors.Is(err, docstore.ErrDecode):
			logger.Warn("skipping saved store", slog.String(log.StoreIDField, ids[i]), log.Err(err))
			return nil, nil
		case err != nil:
			return nil, err
		}
		return st, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load saved stores: %w", err)
	}

	stores := make([]*contract.Store, 0, len(results))
	for _, st := range results {
		if st != nil {
			stores = append(stores, st)
		}
	}
	return stores, nil
}

// AddSaved appends storeID to the saved list of uid. The list is read and
// written back without a transaction, concurrent changes of the same user
// overwrite each other.
func (s *Service) AddSaved(ctx context.Context, uid, storeID string) ([]string, error) {
	u, err := s.loadUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if slices.Contains(u.SavedStoreIDs, storeID) {
		return u.SavedStoreIDs, nil
	}
	saved := append(slices.Clone(u.SavedStoreIDs), storeID)
	return saved, s.writeSaved(ctx, uid, saved)
}

// RemoveSaved drops every occurrence of storeID from the saved list of uid,
// with the same concurrency caveat as AddSaved.
func (s *Service) RemoveSaved(ctx context.Context, uid, storeID string) ([]string, error) {
	u, err := s.loadUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	saved := slices.DeleteFunc(slices.Clone(u.SavedStoreIDs), func(id string) bool {
		return id == storeID
	})
	if saved == nil {
		saved = []string{}
	}
	return saved, s.writeSaved(ctx, uid, saved)
}

func (s *Service) loadUser(ctx context.Context, uid string) (*contract.User, error) {
	snap, err := s.docs.Get(ctx, user.Ref(uid))
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", uid, err)
	}
	return docstore.Decode[contract.User](snap)
}

func (s *Service) writeSaved(ctx context.Context, uid string, saved []string) error {
	err := s.docs.Set(ctx, user.Ref(uid),
		map[string]any{contract.SavedStoreIDsField: saved},
		docstore.Merge(contract.SavedStoreIDsField),
	)
	if err != nil {
		return fmt.Errorf("write saved stores of %s: %w", uid, err)
	}
	return nil
}
