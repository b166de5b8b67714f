package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/luminary"
	"github.com/fwojciec/luminary/cached"
	"github.com/fwojciec/luminary/gemini"
	"github.com/fwojciec/luminary/htmltomarkdown"
	"github.com/fwojciec/luminary/profile"
	lumslog "github.com/fwojciec/luminary/slog"
	"github.com/fwojciec/luminary/sqlite"
	"github.com/fwojciec/luminary/wikidata"
	"github.com/fwojciec/luminary/wikipedia"
	"github.com/fwojciec/luminary/wikiquote"
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

	// SQLite database used for favorites and the response cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("luminary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'luminary --help' to see available commands")
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

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	deps.Logger = logger

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LUMINARY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	cache := sqlite.NewCache(m.DB)
	deps.Cache = cache
	deps.Favorites = sqlite.NewFavoriteService(m.DB)

	// Remote sources are wrapped in a response cache and request logging.
	deps.Biographies = lumslog.NewLoggingBiographyService(
		cached.NewBiographyService(
			wikipedia.NewClient(wikipedia.WithConverter(htmltomarkdown.NewConverter())),
			cache,
		),
		logger,
	)
	deps.Quotes = lumslog.NewLoggingQuoteService(
		cached.NewQuoteService(wikiquote.NewClient(), cache),
		logger,
	)
	deps.Knowledge = lumslog.NewLoggingKnowledgeService(
		cached.NewKnowledgeService(wikidata.NewClient(), cache),
		logger,
	)
	deps.Profiles = profile.NewService(deps.Biographies, deps.Quotes, deps.Knowledge)

	// The generative model is only needed for conversational commands.
	if cmd == "chat" || cmd == "lessons" || cmd == "serve" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		switch {
		case apiKey == "" && cmd != "serve":
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		case apiKey != "":
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.RolePlayer = gemini.NewRolePlayer(client, gemini.DefaultModel)
			deps.Lessons = gemini.NewLessonGenerator(client, gemini.DefaultModel)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LUMINARY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "luminary.db"
	}
	dir := filepath.Join(home, ".luminary")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "luminary.db")
}

// errorMessage writes an application error to stderr in a uniform way.
func errorMessage(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", luminary.ErrorMessage(err))
	return err
}
