package evaluate

// Config holds evaluation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for submission analysis.
// Temperature stays at zero so repeated evaluations of the same submission
// score consistently.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 512,
	}
}
