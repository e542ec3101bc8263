package fsworkspace

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/infra/config"
)

// ConfigFileName matches the name the config finder searches for.
const ConfigFileName = config.DefaultFileName

//go:embed templates/pngsecret.yaml
var defaultConfig []byte

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init writes <root>/.pngsecret.yaml, creates the log directory and makes
// sure .gitignore skips pngsecret's local state. An existing config is kept
// unless force is set.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)

	if err := os.MkdirAll(filepath.Join(root, ".pngsecret", "logs"), 0o755); err != nil {
		return opErr(root, err)
	}

	if err := ensureGitignore(root); err != nil {
		return opErr(root, err)
	}

	dst := filepath.Join(root, ConfigFileName)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	if err := os.WriteFile(dst, defaultConfig, 0o644); err != nil {
		return opErr(dst, err)
	}
	return nil
}

func opErr(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

func ensureGitignore(root string) error {
	const header = "# pngsecret"
	entries := []string{
		".pngsecret/",
		"*.png.bak",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
