package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath resolves a path from a config file, an environment variable,
// or a flag: $VAR references are expanded and a leading ~ stands for the
// user's home directory. Only the tasks, schema, and history paths go
// through this.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		if p == "~" {
			return home
		}
		return filepath.Join(home, p[2:])
	}
	return p
}
