package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv copies dotenv files into the process environment. With no names it
// reads ./.env. Variables already set in the environment are left alone.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			Logger.Debug("No dotenv file found, using process environment")
			return nil
		}
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}
