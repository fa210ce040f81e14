package config

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs   = 4
	DefaultPolicy = "strict"
)

// ValidOutputs lists the accepted output formats.
var ValidOutputs = []string{"auto", "text", "markdown", "json", "yaml"}
