package confkit

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// LoadDotenvOnce loads a .env file into the process environment. The first
// call wins; later calls are no-ops. Lookup order:
//
//   - NO_DOTENV=1 disables loading entirely
//   - ENV_FILE names an explicit file
//   - otherwise every .env from the working directory up to the project root
//
// Variables already set are kept unless DOTENV_OVERLOAD=1.
func LoadDotenvOnce() {
	dotenvOnce.Do(loadDotenv)
}

func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}

	overload := os.Getenv("DOTENV_OVERLOAD") == "1"
	load := func(path string) {
		if !fileExists(path) {
			return
		}
		if overload {
			_ = godotenv.Overload(path)
		} else {
			_ = godotenv.Load(path)
		}
	}

	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		load(envFile)
		return
	}

	paths := dotenvCandidates()
	if overload {
		// Overload lets the last file win, so apply the nearest one last.
		for i := len(paths) - 1; i >= 0; i-- {
			load(paths[i])
		}
		return
	}
	for _, p := range paths {
		load(p)
	}
}
