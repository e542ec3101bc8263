package domain

// Config represents the pngsecret configuration loaded from .pngsecret.yaml.
type Config struct {
	Output  OutputConfig
	Write   WriteConfig
	Logging LoggingConfig
}

type OutputConfig struct {
	// Format is the default print format: pretty, json or raw.
	Format string
}

type WriteConfig struct {
	// Backup keeps the previous file content as <path>.bak before overwriting.
	Backup bool
}

type LoggingConfig struct {
	Dir   string
	Debug bool
}

// Output formats understood by the print command.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatRaw    = "raw"
)

// DefaultConfig provides sane defaults if .pngsecret.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Output:  OutputConfig{Format: FormatPretty},
		Write:   WriteConfig{Backup: false},
		Logging: LoggingConfig{Dir: ".pngsecret/logs"},
	}
}

// ValidFormat reports whether f names a supported print format.
func ValidFormat(f string) bool {
	switch f {
	case FormatPretty, FormatJSON, FormatRaw:
		return true
	}
	return false
}
