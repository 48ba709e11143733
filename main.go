package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/quotebook/domain"
	"github.com/CrestNiraj12/quotebook/infra/config"
	"github.com/CrestNiraj12/quotebook/infra/logging"
	"github.com/CrestNiraj12/quotebook/infra/seed"
	"github.com/CrestNiraj12/quotebook/infra/store"
	"github.com/CrestNiraj12/quotebook/tui"
	"github.com/CrestNiraj12/quotebook/tui/common"
)

// options are the command-line overrides. Zero values leave the config untouched.
type options struct {
	category string
	author   string
	dbPath   string
	pageSize int
	logLevel string
	fresh    bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "quotebook",
		Short:         "Browse a book of quotes in the terminal",
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("{{ .Version }}")

	cmd.Flags().StringVar(&opts.category, "category", "", "open the quotes of a category")
	cmd.Flags().StringVar(&opts.author, "author", "", "open the quotes of an author")
	cmd.Flags().BoolVar(&opts.fresh, "fresh", false, "ignore the list saved from the last session")
	cmd.MarkFlagsMutuallyExclusive("category", "author")

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the quote database")
	cmd.PersistentFlags().IntVar(&opts.pageSize, "page-size", 0, "quotes per page in the full list")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newImportCmd(&opts), newShowCmd(&opts), newVersionCmd())
	return cmd
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Add the quotes of a YAML file to the database",
		Example: `  quotebook import stoics.yml
  quotebook import --db ./quotes.db stoics.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, *opts, args[0])
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Print one quote",
		Example: `  quotebook show 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || id < 1 {
				return fmt.Errorf("invalid quote id %q", args[0])
			}
			return runShow(cmd, *opts, id)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "quotebook: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config and applies command-line overrides.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return applyOptions(cfg, opts)
}

func applyOptions(cfg config.Config, opts options) (config.Config, error) {
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if opts.pageSize != 0 {
		cfg.PageSize = opts.pageSize
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openStore(path string, log zerolog.Logger) (*sql.DB, *store.QuoteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create database dir: %w", err)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Init(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, store.NewQuoteStore(db, log), nil
}

// ensureSeeded fills an empty database with the bundled quotes.
func ensureSeeded(ctx context.Context, qs *store.QuoteStore, log zerolog.Logger) error {
	total, err := qs.TotalQuotes(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	quotes, err := seed.Default()
	if err != nil {
		return err
	}
	res, err := qs.ImportQuotes(ctx, quotes)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	log.Info().Int("added", res.Added).Msg("seeded empty database")
	return nil
}

// resolveStart picks the list to open: flags first, then the saved state.
func resolveStart(opts options, st config.UIState) domain.Filter {
	switch {
	case strings.TrimSpace(opts.category) != "":
		return domain.ByCategory(opts.category)
	case strings.TrimSpace(opts.author) != "":
		return domain.ByAuthor(opts.author)
	case opts.fresh:
		return domain.AllQuotes()
	}
	mode, err := domain.ParseFilterMode(st.FilterMode)
	if err != nil {
		return domain.AllQuotes()
	}
	f := domain.Filter{Mode: mode, Value: strings.TrimSpace(st.FilterValue)}
	if f.Validate() != nil {
		return domain.AllQuotes()
	}
	return f
}

func runTUI(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Component("main")
	log.Info().Str("db", cfg.DBPath).Int("page_size", cfg.PageSize).Msg("starting")

	db, qs, err := openStore(cfg.DBPath, logger.Component("store"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ensureSeeded(ctx, qs, log); err != nil {
		return err
	}

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring ui state")
	}

	root := tui.NewApp(tui.Deps{
		Quotes:    qs,
		Catalog:   qs,
		PageSize:  cfg.PageSize,
		Start:     resolveStart(opts, uiState),
		BrowseTab: common.ParseBrowseKind(uiState.BrowseTab),
		StatePath: cfg.UIStatePath,
		Logger:    logger.Component("tui"),
	})

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}

func runImport(cmd *cobra.Command, opts options, path string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	quotes, err := seed.Load(path)
	if err != nil {
		return err
	}

	db, qs, err := openStore(cfg.DBPath, logger.Component("store"))
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := qs.ImportQuotes(cmd.Context(), quotes)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d quotes (%d already present)\n", res.Added, res.Skipped)
	return nil
}

func runShow(cmd *cobra.Command, opts options, id int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	db, qs, err := openStore(cfg.DBPath, logger.Component("store"))
	if err != nil {
		return err
	}
	defer db.Close()

	q, err := qs.Quote(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatQuote(q))
	return nil
}

// formatQuote renders q for plain terminal output.
func formatQuote(q domain.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d  %s\n", q.ID, q.DisplayText())
	var meta []string
	if a := strings.TrimSpace(q.AuthorName); a != "" {
		meta = append(meta, a)
	}
	if c := common.DisplayCategory(q.CategoryName); c != "" {
		meta = append(meta, "["+c+"]")
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "    - %s\n", strings.Join(meta, " "))
	}
	return b.String()
}
