package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/app"
	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/llm"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/session"
	"github.com/abhisek/mentor/internal/store"
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Start a mentoring session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		learnerID, _ := cmd.Flags().GetString("learner")
		if learnerID == "" {
			learnerID = uuid.NewString()
			fmt.Fprintf(cmd.OutOrStdout(), "New learner ID: %s (pass --learner %s to resume later)\n", learnerID, learnerID)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// Build the LLM provider. The session works without one: every
		// collaborator-backed step then takes its fallback path.
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Research, evaluation and media generation will use built-in fallbacks.")
				cfg.Provider = ""
			}
		}

		var provider llm.Provider
		var generator content.Generator
		switch cfg.Provider {
		case "":
			// No collaborator.
		case "gemini":
			// Share the genai client between text generation and Imagen.
			gp, err := llm.NewGeminiProvider(ctx, cfg.Gemini)
			if err != nil {
				return fmt.Errorf("initializing gemini provider: %w", err)
			}
			provider = llm.WithTimeout(llm.WithLogging(gp, st.EventRepo()), cfg.Timeout)
			generator, err = content.NewImagenGenerator(gp.Client(), filepath.Join(filepath.Dir(dbPath), "artifacts"))
			if err != nil {
				return fmt.Errorf("initializing image generator: %w", err)
			}
		default:
			provider, err = llm.NewProvider(ctx, cfg, st.EventRepo())
			if err != nil {
				return fmt.Errorf("initializing provider: %w", err)
			}
		}

		var searcher research.Searcher
		if provider != nil {
			searcher = research.NewLLMSearcher(provider)
		}

		loop := session.NewLoop(
			research.NewService(searcher),
			evaluate.New(provider, evaluate.DefaultConfig()),
			content.NewService(generator),
			st.ProgressRepo(),
			app.NewTerminalIO(cmd.InOrStdin(), cmd.OutOrStdout()),
			logger,
		)

		return app.Run(ctx, loop, learnerID, topic, cmd.OutOrStdout())
	},
}

func init() {
	learnCmd.Flags().String("learner", "", "Learner ID to save progress under (default: new random ID)")
}
