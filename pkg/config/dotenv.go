package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file the CLI reads MSPEC_* overrides from.
const DefaultEnvFile = ".env"

// LoadDotEnv exports the variables defined in a dotenv file so that Load
// sees them as environment overrides. Variables already set in the process
// environment win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}
