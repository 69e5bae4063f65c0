// Package env loads environment variables from .env files so values such as
// a custom wildcard sentinel can live outside the YAML config.
package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE pairs from the given files (".env" when none are
// named) into the process environment. Variables already set in the
// environment win. Missing files are skipped; malformed files are an error.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
