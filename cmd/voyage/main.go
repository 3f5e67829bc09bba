// Command voyage is a terminal chat client for a travel booking
// assistant.
//
// Usage:
//
//	voyage [flags]
//
// Flags:
//
//	-base-url string  Backend base URL (default: $VOYAGE_API_URL or http://localhost:8000)
//	-user string      Optional user identifier attached to chat requests
//	-state string     State directory for session identity and logs (default: ~/.voyage)
//	-timeout duration Per-request timeout (default 30s)
//	-no-alt-screen    Render inline instead of the alternate screen
//
// A .env file in the working directory is loaded if present;
// VOYAGE_API_URL and VOYAGE_USER_ID are recognized.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/voyagecli/voyage"
	bt "github.com/voyagecli/voyage/bubbletea"
	voyagejson "github.com/voyagecli/voyage/json"
	"github.com/voyagecli/voyage/resty"
	"github.com/voyagecli/voyage/uuid"
)

const defaultBaseURL = "http://localhost:8000"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "voyage: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env before reading flag defaults from the environment.
	// A missing file is fine.
	_ = godotenv.Load()

	var (
		baseURL  = flag.String("base-url", envOr("VOYAGE_API_URL", defaultBaseURL), "Backend base URL")
		userID   = flag.String("user", os.Getenv("VOYAGE_USER_ID"), "Optional user identifier attached to chat requests")
		stateDir = flag.String("state", defaultStateDir(), "State directory for session identity and logs")
		timeout  = flag.Duration("timeout", 30*time.Second, "Per-request timeout")
		noAlt    = flag.Bool("no-alt-screen", false, "Render inline instead of the alternate screen")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The TUI owns the terminal, so logs go to a rotated file in the
	// state directory.
	log := newLogger(*stateDir)

	// Session identity persists in the state directory. A failed open
	// degrades to an in-memory identity for this run.
	var kv voyage.KV
	store, err := voyagejson.Open(filepath.Join(*stateDir, "state.json"))
	if err != nil {
		log.Warn("state file unavailable, session identity will not persist", "error", err)
		kv = memoryKV{}
	} else {
		kv = store
	}

	ids := uuid.Generator{}
	sessions := voyage.NewSessionStore(ids, kv, voyage.WithStoreLogger(log))
	if *userID != "" {
		sessions.SetUserID(*userID)
	}

	api := resty.New(*baseURL, resty.WithTimeout(*timeout))

	// Startup health probe. The TUI still starts when the backend is
	// down; the first real request surfaces the failure to the user.
	if status, err := api.Health(ctx); err != nil {
		log.Warn("backend health check failed", "base_url", *baseURL, "error", err)
	} else {
		log.Info("backend healthy", "base_url", *baseURL, "status", status.Status)
	}

	chat := voyage.NewChat(api, sessions, ids, voyage.WithLogger(log))

	var runOpts []bt.RunOption
	if *noAlt {
		runOpts = append(runOpts, bt.WithoutAltScreen())
	}

	m := bt.New(chat, voyage.DefaultTheme())
	if err := bt.Run(ctx, m, runOpts...); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func newLogger(stateDir string) *slog.Logger {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(stateDir, "voyage.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".voyage")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// memoryKV is the degraded identity store used when the state file
// cannot be opened. Nothing survives the process.
type memoryKV map[string]string

func (m memoryKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memoryKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m memoryKV) Delete(key string) error {
	delete(m, key)
	return nil
}
