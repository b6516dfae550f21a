package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/helpdesk-admin/internal/config"
	"github.com/spec-kit/helpdesk-admin/internal/observability"
	"github.com/spec-kit/helpdesk-admin/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify backend and session store reachability",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	failed := false

	store := session.NewRedisStore(cfg.Redis,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute, logger)
	defer store.Close()
	if err := store.Ping(ctx); err != nil {
		log.Printf("redis %s: FAIL (%v)", cfg.Redis.Addr, err)
		failed = true
	} else {
		log.Printf("redis %s: ok", cfg.Redis.Addr)
	}

	backendURL := cfg.Backend.ResolveBaseURL(cfg.App.Hostname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, backendURL, nil)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	resp, err := (&http.Client{Timeout: 10 * time.Second}).Do(req)
	if err != nil {
		log.Printf("backend %s: FAIL (%v)", backendURL, err)
		failed = true
	} else {
		resp.Body.Close()
		log.Printf("backend %s: ok (status %d)", backendURL, resp.StatusCode)
	}

	if failed {
		return fmt.Errorf("one or more checks failed")
	}
	log.Println("all checks passed")
	return nil
}
