package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sealpost/internal/domain"
	"sealpost/internal/mailbox"
	"sealpost/internal/registry"
	"sealpost/internal/server"
	"sealpost/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	if err := initConfig(); err != nil {
		return err
	}

	regStore, boxStore, err := buildStores()
	if err != nil {
		return err
	}

	reg := registry.New(regStore)
	router := mailbox.NewRouter(reg, boxStore)
	srv := &http.Server{
		Addr:              Config.ListenAddr,
		Handler:           server.New(log, reg, router).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", Config.ListenAddr), zap.String("store", Config.Store))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildStores selects the persistence backend from configuration.
func buildStores() (domain.RegistryStore, domain.MailboxStore, error) {
	switch Config.Store {
	case "memory":
		return store.NewMemoryRegistry(), store.NewMemoryMailbox(), nil
	case "file":
		if err := os.MkdirAll(Config.DataDir, 0o700); err != nil {
			return nil, nil, err
		}
		return store.NewFileRegistry(Config.DataDir), store.NewFileMailbox(Config.DataDir), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: Config.RedisAddr, DB: Config.RedisDB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return store.NewRedisRegistry(rdb), store.NewRedisMailbox(rdb), nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", Config.Store)
	}
}
