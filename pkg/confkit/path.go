package confkit

import (
	"os"
	"path/filepath"
)

// maxDepth bounds how far upward the .env search walks.
const maxDepth = 8

func isRoot(dir string) bool {
	return fileExists(filepath.Join(dir, "go.mod")) || fileExists(filepath.Join(dir, ".git"))
}

// dotenvCandidates lists .env paths from the working directory upward,
// stopping at the project root. Nearer files come first so they win under
// godotenv.Load.
func dotenvCandidates() []string {
	wd, err := os.Getwd()
	if err != nil {
		return []string{".env"}
	}
	var out []string
	dir := wd
	for i := 0; i < maxDepth; i++ {
		out = append(out, filepath.Join(dir, ".env"))
		if isRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return out
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}
