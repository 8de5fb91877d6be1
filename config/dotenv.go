package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bilihot/bilihot/filesystem"
	"github.com/bilihot/bilihot/util"
	"github.com/joho/godotenv"
)

// dotEnvFiles are read from the config directory, most specific first.
var dotEnvFiles = []string{".env.local", ".env"}

// loadDotEnv exports variables from the dotenv files in dir.
// Variables already present in the environment are left untouched.
func loadDotEnv(dir string) error {
	for _, name := range dotEnvFiles {
		path := filepath.Join(dir, name)

		f, err := filesystem.API().Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}

		vars, err := godotenv.Parse(f)
		util.Ignore(f.Close)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		for k, v := range vars {
			if _, ok := os.LookupEnv(k); ok {
				continue
			}
			if err := os.Setenv(k, v); err != nil {
				return err
			}
		}
	}

	return nil
}
