package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/mysql"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/koustreak/dtogen/internal/format"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes every configuration environment variable.
	EnvPrefix = "DTOGEN_"

	// EnvClientDir names the directory searched for dtogen.yaml.
	EnvClientDir = "DTOGEN_CLIENT_DIR"

	// EnvBaseDir is a shorthand for DTOGEN_OUTPUT__BASE_DIR.
	EnvBaseDir = "DTOGEN_BASE_DIR"

	// EnvDatabaseURL supplies the DSN when nothing else does.
	EnvDatabaseURL = "DATABASE_URL"
)

var configNames = []string{"dtogen.yaml", "dtogen.yml"}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"driver":      "database.driver",
	"dsn":         "database.dsn",
	"schema":      "database.schema",
	"base-dir":    "output.base_dir",
	"formatter":   "format.formatter",
	"print-width": "format.print_width",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"addr":        "serve.addr",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"database.driver":          string(database.DriverPostgres),
		"database.dsn":             os.Getenv(EnvDatabaseURL),
		"database.schema":          "",
		"database.connect_timeout": "10s",
		"database.max_conns":       4,
		"output.base_dir":          ".",
		"output.dir_name":          "models",
		"output.class_suffix":      "BaseModel",
		"format.formatter":         format.NameBuiltin,
		"format.print_width":       format.DefaultPrintWidth,
		"format.prettier_command":  format.DefaultPrettierCommand,
		"log.level":                "info",
		"log.format":               "console",
		"upload.enabled":           false,
		"upload.use_ssl":           false,
		"serve.addr":               ":8080",
	}
}

// FindFile returns the configuration file to load: explicit if set,
// otherwise dtogen.yaml (or .yml) in $DTOGEN_CLIENT_DIR, then in the
// working directory. It returns "" when there is none.
func FindFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	var dirs []string
	if d := os.Getenv(EnvClientDir); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, ".")

	for _, dir := range dirs {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}

// envKey turns DTOGEN_DATABASE__DSN into database.dsn. Variables that are
// not configuration keys map to "" and are ignored.
func envKey(s string) string {
	switch s {
	case EnvClientDir:
		return ""
	case EnvBaseDir:
		return "output.base_dir"
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Load builds and validates the configuration. cfgFile may be empty;
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cfg, err := Read(cfgFile, flags)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read layers the configuration sources like Load but skips validation,
// so an incomplete configuration can still be inspected.
func Read(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	path := FindFile(cfgFile)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errs.Wrap(errs.ErrKindInvalidInput, fmt.Sprintf("error reading config file %s", path), err)
		}
	}

	// 3. environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "unable to decode config", err)
	}
	cfg.File = path

	if cfg.Database.Schema == "" {
		cfg.Database.Schema = defaultSchema(cfg.Database.Driver, cfg.Database.DSN)
	}
	return &cfg, nil
}

func defaultSchema(driver, dsn string) string {
	switch database.Driver(driver) {
	case database.DriverPostgres:
		return "public"
	case database.DriverSQLite, database.DriverDuckDB:
		return "main"
	case database.DriverMySQL:
		// Validate reports the missing schema when the DSN names no database
		schema, _ := mysql.SchemaFromDSN(dsn)
		return schema
	}
	return ""
}

func joinPath(base, name string) string {
	if base == "" {
		base = "."
	}
	return filepath.Join(base, name)
}
