package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/amend/internal/config"
	"github.com/iw2rmb/amend/internal/llm"
	"github.com/iw2rmb/amend/internal/logging"
	"github.com/iw2rmb/amend/internal/ui"
	"github.com/iw2rmb/amend/suggest"
)

// sampleText is opened when no file is given.
const sampleText = "const a = \"\"\nconst empty = a === \"\""

var (
	configPath  string
	provider    string
	model       string
	logFile     string
	verbose     bool
	noColor     bool
	fakeReplies []string
)

var rootCmd = &cobra.Command{
	Use:   "amend [file]",
	Short: "Edit a file while a language model proposes line fixes",
	Long: `amend opens a terminal editor. Whenever you pause typing, the recent edits
and the whole document are sent to a language model, and the fixes it proposes
appear in a side panel where they can be applied or dismissed.

Set GEMINI_API_KEY (or GOOGLE_API_KEY), or run with --provider fake to try it
offline.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runEditor,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", config.DefaultPath(), "config file")
	pf.StringVar(&provider, "provider", "", "model provider (gemini, fake)")
	pf.StringVarP(&model, "model", "m", "", "model name")
	pf.StringVar(&logFile, "log-file", "", "log destination")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&noColor, "no-color", false, "disable colors")
	pf.StringArrayVar(&fakeReplies, "fake-reply", nil, "canned reply for the fake provider (repeatable)")

	rootCmd.AddCommand(suggestCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if provider != "" {
		cfg.LLM.Provider = provider
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if len(fakeReplies) > 0 {
		cfg.LLM.FakeReplies = fakeReplies
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
	return llm.New(ctx, llm.Options{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		MaxAttempts: cfg.LLM.MaxAttempts,
		FakeReplies: cfg.LLM.FakeReplies,
	}, logger)
}

// readInput returns the document to open. A missing file starts empty and
// is created on save; no argument opens the sample.
func readInput(args []string, stdin io.Reader) (text, path string, err error) {
	if len(args) == 0 {
		return sampleText, "", nil
	}
	path = args[0]
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(data), path, nil
	case errors.Is(err, os.ErrNotExist):
		return "", path, nil
	default:
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, path, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = logging.DefaultFile()
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Verbose: verbose, File: cfg.Logging.File})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := newClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	template, err := cfg.Prompt()
	if err != nil {
		return err
	}

	notifier := ui.NewNotifier()
	pipeline := suggest.New(suggest.Config{
		QuietInterval:        cfg.Suggest.QuietInterval,
		Template:             template,
		OmitEditHistory:      cfg.Suggest.OmitEditHistory,
		AcceptStaleResponses: cfg.Suggest.AcceptStaleResponses,
		RequestTimeout:       cfg.LLM.Timeout,
		OnSuggestions:        notifier.Notify,
	}, client, logger)
	defer notifier.Close()
	defer pipeline.Close()

	logger.Info("starting editor",
		zap.String("path", path),
		zap.String("client", client.Name()),
		zap.Duration("quiet_interval", cfg.Suggest.QuietInterval))

	return ui.Run(ctx, ui.New(ui.Options{
		Text:            text,
		Path:            path,
		ShowLineNumbers: cfg.Editor.ShowLineNumbers,
		TabWidth:        cfg.Editor.TabWidth,
		HistoryLimit:    cfg.Editor.HistoryLimit,
		Pipeline:        pipeline,
		Updates:         notifier,
		Logger:          logger,
	}))
}
