package cmd

import (
	"go.uber.org/zap"

	"github.com/abhisek/mentor/internal/store"
	"github.com/spf13/cobra"
)

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "mentor",
	Short: "AI mentor for personalized learning",
	Long:  "Mentor — terminal mentor that interviews a learner, builds a phased roadmap, and adapts it from checkpoint evaluations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENTOR_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(collabCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MENTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
