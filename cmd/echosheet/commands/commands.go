// Package commands holds the echosheet command tree
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/clients/compendium"
	"github.com/KirkDiggler/echosheet/internal/config"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	characterorchestrator "github.com/KirkDiggler/echosheet/internal/orchestrators/character"
	sheetorchestrator "github.com/KirkDiggler/echosheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	redisclient "github.com/KirkDiggler/echosheet/internal/redis"
	draftrepo "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/echosheet/internal/repositories/inventory"
	"github.com/KirkDiggler/echosheet/internal/services/character"
	"github.com/KirkDiggler/echosheet/internal/services/sheet"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	redisAddr  string
	ephemeral  bool
	session    string

	cfg *config.Config
)

// Register adds the persistent flags and every subcommand to root
func Register(root *cobra.Command) {
	root.PersistentFlags().StringVar(&serverAddr, "server", "", "EchoSheet server URL (defaults to ECHOSHEET_BASE_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (defaults to ECHOSHEET_HTTP_TIMEOUT)")
	root.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for drafts (defaults to ECHOSHEET_REDIS_ADDR)")
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep drafts in memory for this run only")
	root.PersistentFlags().StringVar(&session, "session", "", "Draft session (defaults to ECHOSHEET_SESSION)")

	root.AddCommand(draftCmd)
	root.AddCommand(spellsCmd)
	root.AddCommand(playstylesCmd)
	root.AddCommand(sheetCmd)
	root.AddCommand(rulesCmd)
}

// SetConfig supplies the environment configuration that flags override
func SetConfig(c *config.Config) {
	cfg = c
}

func settings() *config.Config {
	out := config.Config{}
	if cfg != nil {
		out = *cfg
	}
	if serverAddr != "" {
		out.Backend.BaseURL = serverAddr
	}
	if timeout > 0 {
		out.Backend.HTTPTimeout = timeout
	}
	if redisAddr != "" {
		out.Redis.Addr = redisAddr
	}
	if session != "" {
		out.Drafts.Session = session
	}
	return &out
}

// app is everything a command may call
type app struct {
	characters character.Service
	sheets     sheet.Service
	backend    backend.Client
	compendium compendium.Client
	engine     *rules.Engine
	// redis is nil when drafts live in memory
	redis      redisclient.Client
	session    string
	close      func()
}

// inventories picks the inventory store: an explicit --file wins, then
// redis, then inventory.json in the working directory
func (a *app) inventories() (inventory.Repository, error) {
	if inventoryFile == "" && a.redis != nil {
		return inventory.NewRedis(&inventory.RedisConfig{Client: a.redis})
	}
	path := inventoryFile
	if path == "" {
		path = defaultInventoryFile
	}
	return inventory.NewFile(&inventory.FileConfig{Path: path})
}

// newApp is replaced in tests
var newApp = buildApp

func buildApp() (*app, error) {
	c := settings()
	engine := rules.New(nil)

	client, err := backend.New(&backend.Config{
		BaseURL:     c.Backend.BaseURL,
		HTTPTimeout: c.Backend.HTTPTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	var lookup compendium.Client
	if c.Compendium.Enabled {
		lookup, err = compendium.New(&compendium.Config{
			BaseURL:  c.Compendium.BaseURL,
			CacheTTL: c.Compendium.CacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create compendium client: %w", err)
		}
	}

	repo, rc, closeRepo, err := buildDraftRepo(c)
	if err != nil {
		return nil, err
	}

	printer := notify.Func(printNotification)
	characters, err := characterorchestrator.New(&characterorchestrator.Config{
		DraftRepo:  repo,
		Backend:    client,
		Engine:     engine,
		Compendium: lookup,
		Notifier:   printer,
		TTL:        c.Drafts.TTL,
	})
	if err != nil {
		closeRepo()
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	sheets, err := sheetorchestrator.New(&sheetorchestrator.Config{
		Backend:       client,
		Engine:        engine,
		Notifier:      printer,
		AutosaveDelay: c.Drafts.AutosaveDelay,
	})
	if err != nil {
		closeRepo()
		return nil, fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	return &app{
		characters: characters,
		sheets:     sheets,
		backend:    client,
		compendium: lookup,
		engine:     engine,
		redis:      rc,
		session:    c.Drafts.Session,
		close: func() {
			sheets.Close()
			closeRepo()
		},
	}, nil
}

func buildDraftRepo(c *config.Config) (draftrepo.Repository, redisclient.Client, func(), error) {
	if ephemeral || c.Redis.Addr == "" {
		if !ephemeral {
			slog.Warn("no redis configured, drafts last only for this command")
		}
		repo, err := draftrepo.NewMemory(&draftrepo.MemoryConfig{TTL: c.Drafts.TTL})
		return repo, nil, func() {}, err
	}

	rc, err := redisclient.NewClient(c.Redis.Addr, &redisclient.Options{
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	repo, err := draftrepo.NewRedis(&draftrepo.RedisConfig{Client: rc, TTL: c.Drafts.TTL})
	if err != nil {
		_ = rc.Close() // nolint:errcheck // safe to ignore in cleanup
		return nil, nil, nil, err
	}
	return repo, rc, func() {
		_ = rc.Close() // nolint:errcheck // safe to ignore in cleanup
	}, nil
}

// withApp builds the app, runs fn under the request timeout and releases it
func withApp(fn func(ctx context.Context, a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	d := settings().Backend.HTTPTimeout
	if d <= 0 {
		d = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return fn(ctx, a)
}
