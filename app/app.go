// Package app connects to the Firebase project described by the config.
package app

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/klipach/traveloracle/blob"
	"github.com/klipach/traveloracle/config"
	"github.com/klipach/traveloracle/docstore"
)

type App struct {
	Firebase *firebase.App
	Docs     *docstore.Firestore
	Blobs    *blob.GCS
	Auth     *auth.Client

	firestore *firestore.Client
}

// New initializes the Firebase app and the Firestore, Storage and Auth
// clients. With no credentials file, application default credentials are
// used.
func New(ctx context.Context, cfg config.Firebase) (*App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	fb, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	fs, err := fb.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	storage, err := fb.Storage(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error getting Storage client: %w", err), fs.Close())
	}
	bucket, err := storage.DefaultBucket()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error getting default bucket: %w", err), fs.Close())
	}

	authClient, err := fb.Auth(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error getting Auth client: %w", err), fs.Close())
	}

	return &App{
		Firebase:  fb,
		Docs:      docstore.NewFirestore(fs),
		Blobs:     blob.NewGCS(bucket, cfg.StorageBucket),
		Auth:      authClient,
		firestore: fs,
	}, nil
}

func (a *App) Close() error {
	return a.firestore.Close()
}
