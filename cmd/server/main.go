package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splitlog/internal/api"
	"splitlog/internal/config"
	"splitlog/internal/export"
	mongorepo "splitlog/internal/repository/mongo"
	"splitlog/internal/storage"
	"splitlog/internal/store"
	"splitlog/internal/syncsheet"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("starting splitlog server ...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		log.Info("disconnecting MongoDB ...")
		if err := mongorepo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	docs := mongorepo.NewMongoDocumentStore(dbClient.Database(cfg.Database.Name))
	log.Info("database connection established")

	// Stores load their collection once; first run seeds defaults and the
	// program store backfills legacy slot bindings.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelLoad()

	exercises, err := store.NewExerciseStore(loadCtx, docs)
	if err != nil {
		log.WithError(err).Fatal("failed to load exercises")
	}
	program, err := store.NewProgramStore(loadCtx, docs)
	if err != nil {
		log.WithError(err).Fatal("failed to load program")
	}
	sessions, err := store.NewSessionStore(loadCtx, docs)
	if err != nil {
		log.WithError(err).Fatal("failed to load sessions")
	}
	metrics, err := store.NewMetricStore(loadCtx, docs)
	if err != nil {
		log.WithError(err).Fatal("failed to load metrics")
	}
	timer, err := store.NewTimerStore(loadCtx, docs)
	if err != nil {
		log.WithError(err).Fatal("failed to load timer config")
	}
	log.Info("collection stores loaded")

	var archive storage.ArchiveStorage
	if cfg.S3.BucketName != "" {
		archive, err = storage.NewS3Storage(cfg.S3, log.WithField("component", "archive"))
		if err != nil {
			log.WithError(err).Fatal("failed to initialize archive storage")
		}
	} else {
		log.Info("no archive bucket configured, backup archive endpoints disabled")
	}

	tokens := syncsheet.NewTokenCache()
	remote, err := syncsheet.NewSheetsRemote(context.Background(), tokens, cfg.Sheets.SpreadsheetID)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize sheets client")
	}
	adapter := syncsheet.NewAdapter(
		remote,
		tokens,
		docs,
		sessions,
		cfg.Sheets.SessionsTab,
		cfg.Sheets.ConfigTab,
		log.WithField("component", "sync"),
	)

	router := gin.Default()
	api.SetupRoutes(router, cfg, api.Stores{
		Exercises: exercises,
		Program:   program,
		Sessions:  sessions,
		Metrics:   metrics,
		Timer:     timer,
	}, export.NewBackupService(docs), adapter, tokens, archive)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen and serve error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
