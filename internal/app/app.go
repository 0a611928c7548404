package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/ideahub/internal/config"
	"github.com/MrSnakeDoc/ideahub/internal/editor"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver"
	"github.com/MrSnakeDoc/ideahub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
	"github.com/MrSnakeDoc/ideahub/internal/redis"
	"github.com/MrSnakeDoc/ideahub/internal/scheduler"
	"github.com/MrSnakeDoc/ideahub/internal/store"
	filestore "github.com/MrSnakeDoc/ideahub/internal/store/file"
	redisstore "github.com/MrSnakeDoc/ideahub/internal/store/redis"
	"github.com/MrSnakeDoc/ideahub/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	posts       *store.Store
	editor      *editor.Editor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the snapshot backend. File is the default so the service runs
	// standalone; Redis is opt-in and fails fast when unreachable.
	var persister store.Persister
	var redisClient *goredis.Client
	switch cfg.SnapshotBackend {
	case config.BackendRedis:
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		persister = redisstore.NewPersister(client)
		loggerClient.Info("snapshot backend: redis",
			logger.String("addr", cfg.RedisAddr))
	default:
		persister = filestore.NewPersister(cfg.SnapshotFile)
		loggerClient.Info("snapshot backend: file",
			logger.String("path", cfg.SnapshotFile))
	}

	// Initialize the post store and restore the last snapshot (or seed).
	posts := store.New(persister, loggerClient)
	hydrator := scheduler.NewHydrator(persister, posts, cfg.SeedFile, loggerClient)
	if err := hydrator.Hydrate(context.Background()); err != nil {
		loggerClient.Errorf("Failed to hydrate post store: %v", err)
		os.Exit(1)
	}

	// Editor session with debounced autosave.
	editorClient := editor.New(posts, cfg.AutosaveQuiet, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		Store:             posts,
		Editor:            editorClient,
		PublicListingPath: "/public/posts",
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		posts:       posts,
		editor:      editorClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting IdeaHub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("IdeaHub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("post store ready",
		logger.Int("posts", a.posts.Count()),
		logger.Duration("autosave_quiet", a.cfg.AutosaveQuiet))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// A staged edit waiting on its quiet period commits now.
	a.editor.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Last full snapshot before exit.
	a.posts.Flush(shutdownCtx)

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ IdeaHub stopped cleanly")
	return nil
}
