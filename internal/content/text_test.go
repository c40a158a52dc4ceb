package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderText_SectionsPerLevel(t *testing.T) {
	cases := []struct {
		level       string
		wantSection string
	}{
		{"beginner", "Introduction to sql"},
		{"intermediate", "Advanced concepts in sql"},
		{"advanced", "Expert-level sql techniques"},
		{"mystery", "Introduction to sql"}, // unknown level falls back to beginner
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			out := renderText("sql", tc.level, "visual")
			require.Contains(t, out, tc.wantSection)
			require.Contains(t, out, "## 1. ")
			require.Contains(t, out, "## 4. ")
		})
	}
}

func TestRenderText_StyleFraming(t *testing.T) {
	cases := []struct {
		style string
		want  string
	}{
		{"visual", "diagrams and visual examples"},
		{"auditory", "verbal descriptions"},
		{"hands-on", "step-by-step tutorials"},
		{"theoretical", "mathematical foundations"},
	}

	for _, tc := range cases {
		t.Run(tc.style, func(t *testing.T) {
			require.Contains(t, renderText("sql", "beginner", tc.style), tc.want)
		})
	}
}

func TestRenderText_TitleCasesHeading(t *testing.T) {
	out := renderText("machine learning", "beginner", "visual")
	require.Contains(t, out, "# Machine Learning - Beginner Level")
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"text", "image", "audio", "video"} {
		ct, ok := ParseType(valid)
		require.True(t, ok, valid)
		require.Equal(t, valid, string(ct))
	}

	_, ok := ParseType("hologram")
	require.False(t, ok)
}
