package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/pkg/display"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
	"github.com/goliatone/go-formcheck/pkg/schema"
	"github.com/goliatone/go-formcheck/pkg/submission"
	"github.com/goliatone/go-formcheck/pkg/uischema"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	output := flag.String("output", cfg.Output, "emission format: json, form or pretty")
	uiSchema := flag.String("ui-schema", cfg.UISchema, "UI schema file (embedded defaults if empty)")
	attempts := flag.Int("attempts", cfg.MaxAttempts, "maximum submits before giving up (0 = unlimited)")
	printSchema := flag.Bool("schema", false, "print the OpenAPI document for the form and exit")
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

	if *printSchema {
		raw, err := schema.Publish(context.Background(), signup)
		if err != nil {
			log.Fatalf("Failed to build schema: %v", err)
		}
		fmt.Println(string(raw))
		return
	}

	controller, err := submission.New(
		form.NewStore(form.FieldSet{}),
		submission.WithSink(submission.MultiSink(
			submission.NewWriterSink(os.Stdout, format),
			submission.NewLogSink(logger, display.OutputFormatFormURLEncoded),
		)),
	)
	if err != nil {
		log.Fatalf("Failed to build controller: %v", err)
	}

	session, err := tui.New(controller,
		tui.WithForm(signup),
		tui.WithMaxAttempts(*attempts),
	)
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome, err := session.Run(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		log.Fatalf("Form session failed: %v", err)
	}
	if !outcome.Valid() {
		fmt.Fprintf(os.Stderr, "form rejected: %s\n", strings.Join(outcome.Result.Messages(), "; "))
		os.Exit(1)
	}
}
