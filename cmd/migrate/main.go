package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bistro/internal/storage/postgres"
	"github.com/vladislavdragonenkov/bistro/internal/version"
)

const defaultTimeout = 30 * time.Second

func main() {
	var (
		action      string
		dsn         string
		showVersion bool
	)

	flag.StringVar(&action, "action", "status", "schema action: create|drop|clear|status")
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: BISTRO_POSTGRES_DSN)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	dsn = resolveDSN(dsn)
	if dsn == "" {
		fail("BISTRO_POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("open postgres store: %v", err)
	}
	defer store.Close()

	logger := log.WithField("component", "migrate")

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "create":
		if err := store.CreateSchema(ctx); err != nil {
			fail("create schema failed: %v", err)
		}
		logger.Info("схема создана")
	case "drop":
		if err := store.DropSchema(ctx); err != nil {
			fail("drop schema failed: %v", err)
		}
		logger.Info("схема удалена")
	case "clear":
		if err := store.ClearSchema(ctx); err != nil {
			fail("clear schema failed: %v", err)
		}
		logger.Info("данные очищены")
	case "status":
		present, err := store.SchemaStatus(ctx)
		if err != nil {
			fail("schema status failed: %v", err)
		}
		fmt.Printf("schema status: tables=%d/6\n", present)
	default:
		fail("unsupported action: %s (use create|drop|clear|status)", action)
	}
}

func resolveDSN(flagDSN string) string {
	if dsn := strings.TrimSpace(flagDSN); dsn != "" {
		return dsn
	}
	return strings.TrimSpace(os.Getenv("BISTRO_POSTGRES_DSN"))
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
