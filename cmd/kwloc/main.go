package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kwloc"
	"github.com/fwojciec/kwloc/etree"
	"github.com/fwojciec/kwloc/fs"
	"github.com/fwojciec/kwloc/postgres"
	kwslog "github.com/fwojciec/kwloc/slog"
	"github.com/fwojciec/kwloc/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor used to locate keywords. Set before calling Run().
	Extractor kwloc.Extractor

	// Databases opened from flags.
	DB       *sqlite.DB
	Postgres *postgres.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Extractor: kwloc.DefaultExtractor,
	}
}

// Close closes any databases opened by Run.
func (m *Main) Close() error {
	var err error
	if m.DB != nil {
		err = m.DB.Close()
	}
	if m.Postgres != nil {
		if e := m.Postgres.Close(); err == nil {
			err = e
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kwloc"),
		kong.Description("Group SEO keyword exports by the US city and state they mention"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no CSV file given. Run 'kwloc --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := fs.NewArtifactStore(cli.Out)
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: kwslog.NewLoggingExtractor(m.Extractor, logger),
		Artifacts: kwslog.NewLoggingArtifactStore(store, logger),
		Unchanged: store.Unchanged,
	}

	if cli.SitemapBaseURL != "" {
		sitemap, err := etree.NewSitemapRenderer(cli.SitemapBaseURL)
		if err != nil {
			return err
		}
		deps.Sitemap = sitemap
	}

	defer m.Close()

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set KWLOC_DB or --db to a writable path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		deps.Loaders = append(deps.Loaders, Loader{
			Name:   "sqlite",
			Cities: kwslog.NewLoggingCityService(sqlite.NewCityService(m.DB), "sqlite", logger),
		})
	}

	if cli.PostgresDSN != "" {
		m.Postgres = postgres.NewDB(cli.PostgresDSN)
		if err := m.Postgres.Open(ctx); err != nil {
			fmt.Fprintln(stderr, "Hint: Check KWLOC_POSTGRES_DSN points at a reachable server")
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		deps.Loaders = append(deps.Loaders, Loader{
			Name:   "postgres",
			Cities: kwslog.NewLoggingCityService(postgres.NewCityService(m.Postgres), "postgres", logger),
		})
	}

	cmd := &ExtractCmd{
		Path: cli.Path,
		Out:  cli.Out,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path           string `arg:"" name:"csv" help:"Keyword export CSV to process"`
	Out            string `short:"o" default:"data" env:"KWLOC_OUT" help:"Directory for generated artifacts"`
	DB             string `name:"db" env:"KWLOC_DB" help:"SQLite database to load extracted cities into"`
	PostgresDSN    string `name:"postgres-dsn" env:"KWLOC_POSTGRES_DSN" help:"Postgres DSN to load extracted cities into"`
	SitemapBaseURL string `name:"sitemap-base-url" env:"KWLOC_SITEMAP_BASE_URL" help:"Site URL; also writes a sitemap of state and city pages"`
	Verbose        bool   `short:"v" help:"Log each keyword and store operation"`
}
