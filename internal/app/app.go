// Package app hosts the terminal front-end for mentoring sessions.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/mentor/internal/session"
	"github.com/abhisek/mentor/internal/ui/theme"
)

// Run drives one full mentoring session through the loop and prints the
// summary. The returned error reflects IO failure only; degraded steps are
// reported in the summary.
func Run(ctx context.Context, loop *session.Loop, learnerID, topic string, out io.Writer) error {
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Let's learn %s", topic)))

	s, err := loop.Run(ctx, learnerID, topic)
	if err != nil {
		if s != nil && len(s.Steps) > 0 {
			fmt.Fprintln(out, renderSummary(s))
		}
		return err
	}

	fmt.Fprintln(out, renderSummary(s))
	return nil
}
