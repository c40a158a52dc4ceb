package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// levelSections maps a difficulty level to its section outline.
var levelSections = map[string][]string{
	"beginner": {
		"Introduction to %s",
		"Basic concepts of %s",
		"Getting started with %s",
		"Simple examples of %s",
	},
	"intermediate": {
		"Advanced concepts in %s",
		"Practical applications of %s",
		"Best practices for %s",
		"Common challenges in %s",
	},
	"advanced": {
		"Expert-level %s techniques",
		"Advanced applications of %s",
		"Optimization strategies for %s",
		"Future trends in %s",
	},
}

// styleAdaptations maps a learning style to its per-section framing.
var styleAdaptations = map[string]string{
	"visual":      "This section includes diagrams and visual examples to help you understand the concepts.",
	"auditory":    "This section focuses on explanations and verbal descriptions of the concepts.",
	"hands-on":    "This section includes practical exercises and step-by-step tutorials.",
	"theoretical": "This section provides in-depth theoretical explanations and mathematical foundations.",
}

var titleCaser = cases.Title(language.English)

// renderText builds markdown lesson text from the level outline and style
// framing. Unknown levels use the beginner outline.
func renderText(topic, level, style string) string {
	sections, ok := levelSections[level]
	if !ok {
		sections = levelSections["beginner"]
	}
	adaptation := styleAdaptations[style]

	var b strings.Builder
	fmt.Fprintf(&b, "# %s - %s Level\n\n", titleCaser.String(topic), titleCaser.String(level))
	for i, section := range sections {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, fmt.Sprintf(section, topic))
		if adaptation != "" {
			b.WriteString(adaptation)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
