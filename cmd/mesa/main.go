package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mesa"
	"github.com/fwojciec/mesa/cached"
	"github.com/fwojciec/mesa/fallback"
	"github.com/fwojciec/mesa/gemini"
	mesahttp "github.com/fwojciec/mesa/http"
	"github.com/fwojciec/mesa/offline"
	mesaslog "github.com/fwojciec/mesa/slog"
	"github.com/fwojciec/mesa/sqlite"
	"github.com/fwojciec/mesa/workspace"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the workspace snapshot and query cache.
	DB *sqlite.DB

	// Workspace state for end-to-end testing.
	Store *workspace.Store
	Saver *workspace.Autosaver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	// Environment overrides from .env.local, matching where the
	// companion server reads its own configuration.
	_ = godotenv.Load(".env.local")

	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close flushes pending workspace state and releases the database.
func (m *Main) Close() error {
	if m.Saver != nil {
		if err := m.Saver.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Panel:  &workspace.Panel{},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mesa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mesa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the database and restore the persisted workspace.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MESA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	snapshots := sqlite.NewSnapshotService(m.DB, logger)
	m.Store = workspace.NewStore()
	projects, err := snapshots.LoadWorkspace(ctx)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}
	m.Store.Adopt(projects)
	m.Saver = workspace.NewAutosaver(m.Store, snapshots, logger)

	deps.Store = m.Store
	deps.Saver = m.Saver
	deps.Advisor = newAdvisor(ctx, m.DB, logger, stderr)
	deps.Mirror = mesahttp.NewMirror(os.Getenv("MESA_SAVE_URL"))
	deps.Library = mesahttp.NewLibrary(librarySources())

	return kongCtx.Run(deps)
}

// newAdvisor assembles the advisory chain. With an API key the chain is
// logging over fallback over cache over Gemini; without one every tool
// answers from the offline advisor.
func newAdvisor(ctx context.Context, db *sqlite.DB, logger *slog.Logger, stderr io.Writer) mesa.Advisor {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" || apiKey == "PLACEHOLDER_API_KEY" {
		return mesaslog.NewLoggingAdvisor(offline.NewAdvisor(), logger)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return mesaslog.NewLoggingAdvisor(offline.NewAdvisor(), logger)
	}

	var advisor mesa.Advisor = gemini.NewAdvisor(client)
	advisor = cached.NewAdvisor(advisor, sqlite.NewCacheService(db), logger)
	advisor = fallback.NewAdvisor(advisor, logger)
	return mesaslog.NewLoggingAdvisor(advisor, logger)
}

// librarySources lists the reference documents configured via the
// environment. Unset sources are simply absent.
func librarySources() []mesahttp.Source {
	var sources []mesahttp.Source
	if url := os.Getenv("MESA_CATALOG_URL"); url != "" {
		sources = append(sources, mesahttp.Source{Name: "Catálogo", URL: url})
	}
	if url := os.Getenv("MESA_NOTES_URL"); url != "" {
		sources = append(sources, mesahttp.Source{Name: "Kindle Notes", URL: url})
	}
	return sources
}

func newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("MESA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("MESA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mesa.db"
	}
	dir := filepath.Join(home, ".mesa")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mesa.db")
}
