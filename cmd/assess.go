package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentor/internal/profile"
)

var assessCmd = &cobra.Command{
	Use:   "assess <topic>",
	Short: "Assess a learner profile without starting a session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		experience, _ := cmd.Flags().GetString("experience")
		goals, _ := cmd.Flags().GetString("goals")
		style, _ := cmd.Flags().GetString("style")

		p := profile.Assess(topic, experience, goals, style)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Topic:          %s\n", p.Topic)
		fmt.Fprintf(out, "Stated level:   %s\n", p.StatedExperience)
		fmt.Fprintf(out, "Assessed level: %s (goal complexity %+d)\n", p.AssessedLevel, p.Factors.GoalComplexity)
		fmt.Fprintf(out, "Style:          %s\n", p.PreferredStyle)
		fmt.Fprintf(out, "Pace:           %s\n", p.Pace)
		fmt.Fprintf(out, "Timeline:       %s\n", p.EstimatedTimeline)
		fmt.Fprintf(out, "Confidence:     %.0f%%\n", p.Confidence*100)
		return nil
	},
}

func init() {
	assessCmd.Flags().String("experience", "beginner", "Stated experience (beginner/intermediate/advanced)")
	assessCmd.Flags().String("goals", "", "Learning goals text")
	assessCmd.Flags().String("style", "visual", "Preferred style (visual/auditory/hands-on/theoretical)")
}
