// Package filesystem holds the path helpers shared by the infrastructure
// adapters that anchor files under ~/.jarvis.
package filesystem

import "os"

// UserHomeDir resolves the current user's home directory. When it cannot be
// determined the "." fallback keeps ~/.jarvis paths relative to the working
// directory instead of failing adapter construction.
func UserHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
