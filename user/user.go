// Package user reads and writes Users documents and their profile images.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/klipach/traveloracle/blob"
	"github.com/klipach/traveloracle/contract"
	"github.com/klipach/traveloracle/docstore"
	"github.com/klipach/traveloracle/log"
)

const Collection = docstore.Collection(contract.UsersCollection)

// Ref addresses the document of uid.
func Ref(uid string) docstore.Ref {
	return Collection.Doc(uid)
}

type Repository struct {
	docs  docstore.Store
	blobs blob.Store
}

func New(docs docstore.Store, blobs blob.Store) *Repository {
	return &Repository{docs: docs, blobs: blobs}
}

// Create uploads the profile image, when given, and writes the whole user
// document. Nothing is written when the upload fails.
func (r *Repository) Create(ctx context.Context, u contract.User, profileImage []byte) (*contract.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := r.uploadProfileImage(ctx, &u, profileImage); err != nil {
		return nil, err
	}
	if u.ConversationIDs == nil {
		u.ConversationIDs = []string{}
	}
	if u.SavedStoreIDs == nil {
		u.SavedStoreIDs = []string{}
	}

	if err := r.docs.Set(ctx, Ref(u.UID), &u); err != nil {
		return nil, fmt.Errorf("create user %s: %w", u.UID, err)
	}
	log.LoggerFromContext(ctx).Info("user created", slog.String(log.UserIDField, u.UID))
	return &u, nil
}

// Update uploads the profile image, when given, and merges the non-empty
// profile fields into the stored document. Empty fields, conversation and
// saved store lists are left untouched.
func (r *Repository) Update(ctx context.Context, u contract.User, profileImage []byte) (*contract.User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := r.uploadProfileImage(ctx, &u, profileImage); err != nil {
		return nil, err
	}

	fields := map[string]any{contract.UIDField: u.UID}
	merge := []string{contract.UIDField}
	for _, f := range []struct{ name, value string }{
		{contract.EmailField, u.Email},
		{contract.DisplayNameField, u.DisplayName},
		{contract.ProfileImageURLField, u.ProfileImageURL},
	} {
		if f.value != "" {
			fields[f.name] = f.value
			merge = append(merge, f.name)
		}
	}

	if err := r.docs.Set(ctx, Ref(u.UID), fields, docstore.Merge(merge...)); err != nil {
		return nil, fmt.Errorf("update user %s: %w", u.UID, err)
	}
	return &u, nil
}

func (r *Repository) uploadProfileImage(ctx context.Context, u *contract.User, image []byte) error {
	if len(image) == 0 {
		return nil
	}
	url, err := r.blobs.Upload(ctx, blob.ProfileImages, blob.ImageKey(u.UID), image)
	if err != nil {
		return err
	}
	u.ProfileImageURL = url
	return nil
}

func (r *Repository) Get(ctx context.Context, uid string) (*contract.User, error) {
	snap, err := r.docs.Get(ctx, Ref(uid))
	if err != nil {
		return nil, err
	}
	return docstore.Decode[contract.User](snap)
}

// All returns every user. A single malformed document fails the call.
func (r *Repository) All(ctx context.Context) ([]*contract.User, error) {
	snaps, err := r.docs.Query(ctx, docstore.All(Collection))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]*contract.User, 0, len(snaps))
	for _, snap := range snaps {
		u, err := docstore.Decode[contract.User](snap)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
