package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/klipach/traveloracle"
	"github.com/klipach/traveloracle/app"
	"github.com/klipach/traveloracle/auth"
	"github.com/klipach/traveloracle/catalog"
	"github.com/klipach/traveloracle/config"
	"github.com/klipach/traveloracle/conversation"
	tlog "github.com/klipach/traveloracle/log"
	"github.com/klipach/traveloracle/logger"
	"github.com/klipach/traveloracle/review"
	"github.com/klipach/traveloracle/user"
)

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	lg, closeLog, err := logger.New(ctx, cfg.Log, cfg.Firebase.ProjectID)
	if err != nil {
		log.Fatalf("logger.New: %v\n", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Printf("closing logger: %v\n", err)
		}
	}()

	a, err := app.New(ctx, cfg.Firebase)
	if err != nil {
		log.Fatalf("app.New: %v\n", err)
	}
	defer a.Close()

	traveloracle.New(traveloracle.Deps{
		Auth:          auth.New(a.Auth),
		Users:         user.New(a.Docs, a.Blobs),
		Conversations: conversation.New(a.Docs, a.Blobs),
		Stores:        catalog.New(a.Docs, a.Blobs),
		Reviews:       review.New(a.Docs),
		Logger:        lg.With(slog.String("service", cfg.Service.Name)),
		ProjectID:     cfg.Firebase.ProjectID,
	}).Register()

	lg.Info("started", slog.String("port", cfg.Service.Port))
	if err := funcframework.Start(cfg.Service.Port); err != nil {
		lg.Error("funcframework.Start", tlog.Err(err))
		return
	}
	lg.Info("done")
}
