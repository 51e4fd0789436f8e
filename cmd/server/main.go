// @title           Contact Keeper API
// @version         1.0
// @description     Personal contacts backend: registration, JWT login and per-user contact CRUD.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
//
// Package main содержит точку входа сервера Contact Keeper.
//
// Порядок запуска:
//   - загрузка .env (если есть) и конфига (--config или CONFIG_PATH);
//   - выбор хранилища: PostgreSQL с миграциями или память процесса;
//   - создание сервисов, middleware, хендлеров и роутера;
//   - запуск HTTP(S)-сервера и graceful shutdown по SIGINT/SIGTERM/SIGQUIT.
package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-contact-keeper/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/repository"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/logger"
)

const defaultConfigPath = "./configs/server.yaml"

func main() {
	boot := logger.NewHTTPLogger().Sugar()

	if err := godotenv.Load(); err != nil {
		boot.Warnf("no .env file loaded, error: %v", err)
	}

	configPath := flag.String("config", envOr("CONFIG_PATH", defaultConfigPath), "path to server.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Stdout:     cfg.Log.Stdout,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// хранилище
	var (
		repos service.Repositories
		db    *sql.DB
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := repository.NewMemoryStore()
		repos = service.Repositories{
			Users:    store.Users(),
			Contacts: store.Contacts(),
			Health:   store,
		}
		sugar.Warn("using in-memory store, data is lost on restart")
	default:
		db, err = config.OpenPostgres(ctx, cfg, httpLogger)
		if err != nil {
			sugar.Fatal(err)
		}
		timeout := repository.WithQueryTimeout(cfg.DB.QueryTimeout)
		repos = service.Repositories{
			Users:    repository.NewUsersRepository(db, timeout),
			Contacts: repository.NewContactsRepository(db, timeout),
			Health:   repository.NewHealthRepository(db, timeout),
		}
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	svc, err := service.NewServices(repos, cfg)
	if err != nil {
		sugar.Fatal(err)
	}

	verifier := middleware.NewJWTVerifier(svc.Auth.Tokens())
	handler := api.NewHandler(svc, httpLogger, verifier)
	handler.MaxBodyBytes = cfg.Server.MaxBodyBytes
	router := h.NewRouter(handler, h.Options{Swagger: cfg.Docs.Swagger})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: cfg.TLSMinVersion()}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infof("server started on %s (tls=%t, store=%s)", server.Addr, cfg.TLS.Enabled, cfg.DB.Driver)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
