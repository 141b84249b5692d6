package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/config"
	"github.com/stackit-app/backend/internal/handlers"
	"github.com/stackit-app/backend/internal/query"
	"github.com/stackit-app/backend/internal/repository"
	"github.com/stackit-app/backend/internal/server"
	"github.com/stackit-app/backend/internal/store"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	var st store.Store
	if cfg.UsePostgres() {
		st, err = store.OpenPostgres(cfg.PostgresDSN, log)
	} else {
		st, err = store.OpenSQLite(cfg.SQLitePath, log)
	}
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer st.Close()

	if err := store.Initialize(st); err != nil {
		log.Fatal("failed to seed store", zap.Error(err))
	}

	questions := repository.NewQuestions(st, log)
	answers := repository.NewAnswers(st, log)
	comments := repository.NewComments(st, log)
	engine := query.NewEngine(questions, log)

	handler := handlers.NewHandler(questions, answers, comments, engine)
	srv := server.New(cfg, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
