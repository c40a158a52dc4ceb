package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/evaluate"
	"github.com/abhisek/mentor/internal/profile"
	"github.com/abhisek/mentor/internal/research"
	"github.com/abhisek/mentor/internal/roadmap"
	"github.com/abhisek/mentor/internal/ui/theme"
)

// TerminalIO implements the session IO surface over a line-oriented
// terminal.
type TerminalIO struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalIO creates a TerminalIO reading answers from in and writing
// prompts and renderings to out.
func NewTerminalIO(in io.Reader, out io.Writer) *TerminalIO {
	return &TerminalIO{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine reads one trimmed input line. io.EOF signals the learner closed
// the input stream.
func (t *TerminalIO) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *TerminalIO) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprintln(t.out, theme.Prompt.Render(question))
	fmt.Fprint(t.out, "> ")
	return t.readLine(ctx)
}

func (t *TerminalIO) ChooseContentType(ctx context.Context, tag roadmap.CheckpointTag) (string, error) {
	fmt.Fprintln(t.out, theme.Prompt.Render(fmt.Sprintf("Next checkpoint: %s", tag)))
	fmt.Fprintln(t.out, theme.Hint.Render("Content type? (text/image/audio/video, Enter for text)"))
	fmt.Fprint(t.out, "> ")
	answer, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = "text"
	}
	return answer, nil
}

func (t *TerminalIO) CollectSubmission(ctx context.Context, tag roadmap.CheckpointTag) (string, error) {
	fmt.Fprintln(t.out, theme.Prompt.Render(fmt.Sprintf("Submit your work for %s:", tag)))
	fmt.Fprint(t.out, "> ")
	return t.readLine(ctx)
}

func (t *TerminalIO) CollectFeedback(ctx context.Context, _ evaluate.Result) (string, error) {
	fmt.Fprintln(t.out, theme.Hint.Render("Any feedback on this checkpoint? (Enter to skip)"))
	fmt.Fprint(t.out, "> ")
	return t.readLine(ctx)
}

func (t *TerminalIO) ShowProfile(p profile.LearnerProfile) {
	fmt.Fprintln(t.out, renderProfile(p))
}

func (t *TerminalIO) ShowDigest(d research.Digest) {
	fmt.Fprintln(t.out, renderDigest(d))
}

func (t *TerminalIO) ShowRoadmap(r roadmap.Roadmap) {
	fmt.Fprintln(t.out, renderRoadmap(r))
}

func (t *TerminalIO) ShowContent(c content.Content) {
	fmt.Fprintln(t.out, renderContent(c))
}

func (t *TerminalIO) ShowEvaluation(e evaluate.Result) {
	fmt.Fprintln(t.out, renderEvaluation(e))
}
