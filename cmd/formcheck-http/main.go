package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/httpapi"
	"github.com/goliatone/go-formcheck/pkg/submission"
	"github.com/goliatone/go-formcheck/pkg/uischema"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	addr := flag.String("addr", cfg.HTTPAddr, "listen address")
	output := flag.String("output", cfg.Output, "log format for emitted records: json, form or pretty")
	uiSchema := flag.String("ui-schema", cfg.UISchema, "UI schema file (embedded defaults if empty)")
	flag.Parse()

	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags)

	format, err := display.ParseOutputFormat(*output)
	if err != nil {
		log.Fatalf("Invalid output format: %v", err)
	}
	signup, err := uischema.SignupForm(*uiSchema)
	if err != nil {
		log.Fatalf("Failed to load UI schema: %v", err)
	}

	board := display.NewBoard()
	controller, err := submission.New(
		form.NewStore(form.FieldSet{}),
		submission.WithSink(submission.NewLogSink(logger, format)),
		submission.WithErrorDisplay(board),
	)
	if err != nil {
		log.Fatalf("Failed to build controller: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	mount, err := httpapi.Mount(r, controller, httpapi.WithForm(signup))
	if err != nil {
		log.Fatalf("Failed to mount routes: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("serving %s on %s", mount, *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	if msgs := board.Messages(); len(msgs) > 0 {
		logger.Printf("last submit errors: %s", strings.Join(msgs, "; "))
	}
}
