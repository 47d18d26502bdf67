package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payroast/internal/app"
	"payroast/internal/config"
	"payroast/internal/pkg/logger"
	"payroast/internal/pkg/social"
	"payroast/internal/pkg/wallet"
	"payroast/internal/service"
	"payroast/internal/storage"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	store, err := newStorage(l)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	app := app.NewApp(store, wallet.NewSimulatedPayer(), social.NewIntentPoster(), l)

	if config.SeedDemoData {
		if err := app.SeedDemoFeed(context.Background()); err != nil {
			log.Fatal(err)
		}
	}

	service := service.NewService(app, config.ServerRunAddress, l)

	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{Addr: config.ServerRunAddress, Handler: service.NewRouter(), ReadHeaderTimeout: readHeaderTimeout}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		const shutdownTimeout = 30 * time.Second
		shutdownCtx, cancel := context.WithTimeout(serverCtx, shutdownTimeout)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		defer store.Close()
		log.Fatal(err)
	}

	<-serverCtx.Done()
}

// newStorage picks the entity store backend: Postgres when a database URI is
// configured, otherwise the single-file store.
func newStorage(l *logger.Logger) (storage.Storage, error) {
	if config.DatabaseURI != "" {
		return storage.NewPostgreSQL(config.DatabaseURI, l)
	}
	return storage.NewBolt(config.StorageFilePath, l)
}
