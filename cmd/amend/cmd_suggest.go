package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/amend/internal/config"
	"github.com/iw2rmb/amend/internal/logging"
	"github.com/iw2rmb/amend/suggest"
)

var printRaw bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [file]",
	Short: "Ask the model once for fixes and print them as JSON",
	Long: `suggest sends the document to the model without any edit history and
prints the proposed edits as a JSON array of {"line", "text"} objects.
Use "-" to read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&printRaw, "raw", false, "print the unparsed model reply")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	text, _, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Verbose: verbose, File: cfg.Logging.File})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	client, err := newClient(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	raw, err := requestOnce(cmd, cfg, client, text)
	if err != nil {
		return err
	}
	if printRaw {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), raw)
		return err
	}
	return printEdits(cmd.OutOrStdout(), raw)
}

func requestOnce(cmd *cobra.Command, cfg *config.Config, backend suggest.Backend, text string) (string, error) {
	template, err := cfg.Prompt()
	if err != nil {
		return "", err
	}
	r := &suggest.Requester{
		Backend:         backend,
		Template:        template,
		OmitEditHistory: cfg.Suggest.OmitEditHistory,
		Timeout:         cfg.LLM.Timeout,
	}
	return r.Request(cmd.Context(), nil, text)
}

// printEdits writes the parsed edits. An empty reply prints [].
func printEdits(w io.Writer, raw string) error {
	edits, err := suggest.Parse(raw)
	switch {
	case errors.Is(err, suggest.ErrEmpty):
		edits = []suggest.CandidateEdit{}
	case err != nil:
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(edits)
}
