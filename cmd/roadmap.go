package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
	"github.com/abhisek/mentor/internal/session"
	"github.com/abhisek/mentor/internal/store"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <topic>",
	Short: "Show a learner's saved roadmap, or preview the base template",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		learnerID, _ := cmd.Flags().GetString("learner")
		out := cmd.OutOrStdout()

		if learnerID != "" {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			d, err := session.LoadProgress(cmd.Context(), st.ProgressRepo(), learnerID)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			if d == nil {
				fmt.Fprintf(out, "No saved progress for learner %s.\n", learnerID)
				return nil
			}

			fmt.Fprintf(out, "Topic:         %s\n", d.Topic)
			fmt.Fprintf(out, "Current phase: %s\n", d.CurrentPhase)
			fmt.Fprintf(out, "Overall score: %d\n", d.OverallScore)
			fmt.Fprintf(out, "Timeline:      %s\n", d.LearningPath.Timeline)
			for i, p := range d.LearningPath.Phases {
				fmt.Fprintf(out, "Phase %d: %s (%s)\n", i+1, p.Name, p.Duration)
				for _, o := range p.Objectives {
					fmt.Fprintf(out, "  - %s\n", o)
				}
				for _, c := range p.Checkpoints {
					done := " "
					for _, cc := range d.CompletedCheckpoints {
						if cc == c {
							done = "x"
						}
					}
					fmt.Fprintf(out, "  [%s] %s\n", done, c)
				}
			}
			if a := d.LearningPath.Adaptation; a != nil {
				fmt.Fprintf(out, "Adapted: %s (timeline now %s)\n", a.Reason, a.UpdatedTimeline)
			}
			return nil
		}

		// Preview the base template for a default profile.
		p := profile.Assess(topic, "beginner", "", "visual")
		r := roadmap.Build(topic, p, research.Digest{}, p.EstimatedTimeline)

		fmt.Fprintf(out, "Roadmap preview for %s (%s)\n", r.Topic, r.Timeline)
		for i, phase := range r.Phases {
			fmt.Fprintf(out, "Phase %d: %s (%s)\n", i+1, phase.Name, phase.Duration)
			for _, o := range phase.Objectives {
				fmt.Fprintf(out, "  - %s\n", o)
			}
			for _, c := range phase.Checkpoints {
				fmt.Fprintf(out, "  checkpoint: %s\n", c)
			}
		}
		return nil
	},
}

func init() {
	roadmapCmd.Flags().String("learner", "", "Learner ID to show saved progress for")
}
