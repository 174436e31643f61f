package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFiles порядок важен: godotenv не перезаписывает уже заданные переменные,
// поэтому значения из .env.local выигрывают у .env.
var DefaultFiles = []string{".env.local", ".env"}

// Load подхватывает существующие env-файлы и применяет флаги командной строки
// -port и -storage поверх переменных окружения.
func Load(files ...string) error {
	if len(files) == 0 {
		files = DefaultFiles
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return applyFlags(flag.CommandLine, os.Args[1:])
}

// envFlags флаг командной строки -> переменная окружения, которую он перекрывает.
var envFlags = []struct {
	name, env, usage string
}{
	{name: "port", env: "PORT", usage: "Server port (overrides PORT environment variable)"},
	{name: "storage", env: "STORAGE_DRIVER", usage: "Storage driver: memory or postgres (overrides STORAGE_DRIVER)"},
}

func applyFlags(fset *flag.FlagSet, args []string) error {
	for _, f := range envFlags {
		if fset.Lookup(f.name) == nil {
			fset.String(f.name, "", f.usage)
		}
	}
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for _, f := range envFlags {
		value := fset.Lookup(f.name).Value.String()
		if value == "" {
			continue
		}
		if err := os.Setenv(f.env, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", f.env, err)
		}
	}
	return nil
}
