package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/vbonduro/lostfound/internal/config"
	"github.com/vbonduro/lostfound/internal/logging"
	"github.com/vbonduro/lostfound/internal/photostore"
	"github.com/vbonduro/lostfound/internal/photostore/local"
	"github.com/vbonduro/lostfound/internal/photostore/s3"
	"github.com/vbonduro/lostfound/internal/service"
	"github.com/vbonduro/lostfound/internal/store"
	"github.com/vbonduro/lostfound/internal/web"
	"github.com/vbonduro/lostfound/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx := context.Background()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("failed to connect to mongodb", "error", err)
		return
	}
	defer func() {
		dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	posts := store.NewPostStore(client, cfg.MongoDB)

	photos, err := newPhotoStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize photo store", "error", err)
		return
	}

	postService := service.NewPostService(posts, photos, logger)
	server := web.NewServer(postService, templates.FS, photos, cfg.SecretKey, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newPhotoStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (photostore.PhotoStore, error) {
	switch cfg.PhotoBackend {
	case "local":
		logger.Info("using local photo backend", "path", cfg.PhotoPath)
		return local.New(cfg.PhotoPath)
	default:
		st, err := s3.New(s3.Config{
			Endpoint:      cfg.S3Endpoint,
			AccessKeyID:   cfg.S3AccessKeyID,
			SecretKey:     cfg.S3SecretKey,
			UseSSL:        cfg.S3UseSSL,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("using s3 photo backend", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return st, nil
	}
}
