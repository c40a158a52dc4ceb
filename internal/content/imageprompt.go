package content

import (
	"fmt"
	"strings"
)

// levelPromptInfo describes how a difficulty level shapes an illustration.
type levelPromptInfo struct {
	complexity string
	detail     string
	style      string
}

var levelPromptInfos = map[string]levelPromptInfo{
	"beginner": {
		complexity: "simple and easy to understand",
		detail:     "basic concepts with clear labels",
		style:      "clean, minimal design with large text",
	},
	"intermediate": {
		complexity: "moderately detailed",
		detail:     "comprehensive concepts with explanations",
		style:      "professional and informative",
	},
	"advanced": {
		complexity: "complex and comprehensive",
		detail:     "detailed technical information",
		style:      "sophisticated and technical",
	},
}

var stylePromptAdaptations = map[string]string{
	"visual":      "Include diagrams, charts, flowcharts, and visual representations with clear visual hierarchy",
	"auditory":    "Add text annotations, labels, and explanatory text boxes",
	"hands-on":    "Show step-by-step processes, examples, and practical applications with numbered steps",
	"theoretical": "Include mathematical formulas, abstract concepts, and theoretical frameworks",
}

// imagePrompt builds the detailed Imagen prompt for an educational
// illustration.
func imagePrompt(topic, level, style string) string {
	info, ok := levelPromptInfos[level]
	if !ok {
		info = levelPromptInfos["beginner"]
	}
	adaptation, ok := stylePromptAdaptations[style]
	if !ok {
		adaptation = stylePromptAdaptations["visual"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create an educational illustration about %s that is %s and designed for %s learners.\n\n", topic, info.complexity, style)
	b.WriteString("Visual Requirements:\n")
	fmt.Fprintf(&b, "- %s\n", adaptation)
	fmt.Fprintf(&b, "- %s\n", info.detail)
	fmt.Fprintf(&b, "- %s\n", info.style)
	b.WriteString("- Professional educational quality\n")
	b.WriteString("- Clear, readable text and labels\n")
	b.WriteString("- High contrast colors for readability\n")
	b.WriteString("- Visually appealing and engaging\n")
	b.WriteString("- Suitable for learning purposes\n\n")
	fmt.Fprintf(&b, "The image should help students understand %s concepts at the %s level through %s learning methods. Make it educational and informative.", topic, level, style)
	return b.String()
}
