// Package config loads dtogen's settings.
//
// Values are layered, lowest precedence first:
//
//	defaults < dtogen.yaml < DTOGEN_* environment < explicitly set CLI flags
package config

import (
	"time"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/filestore"
	"github.com/koustreak/dtogen/internal/format"
	"github.com/koustreak/dtogen/internal/logger"
)

// Config holds every setting dtogen reads.
type Config struct {
	Database DatabaseConfig `koanf:"database" yaml:"database"`
	Output   OutputConfig   `koanf:"output" yaml:"output"`
	Format   FormatConfig   `koanf:"format" yaml:"format"`
	Log      LogConfig      `koanf:"log" yaml:"log"`
	Upload   UploadConfig   `koanf:"upload" yaml:"upload"`
	Serve    ServeConfig    `koanf:"serve" yaml:"serve"`

	// File is the configuration file that was loaded, if any.
	File string `koanf:"-" yaml:"-"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver" yaml:"driver"`
	DSN    string `koanf:"dsn" yaml:"dsn"`

	// Schema defaults per driver: "public" for postgres, "main" for sqlite
	// and duckdb, the DSN's database name for mysql.
	Schema string `koanf:"schema" yaml:"schema"`

	ConnectTimeout time.Duration `koanf:"connect_timeout" yaml:"-"`
	MaxConns       int32         `koanf:"max_conns" yaml:"max_conns"`
}

// MarshalYAML prints ConnectTimeout as "10s" rather than nanoseconds.
func (d DatabaseConfig) MarshalYAML() (interface{}, error) {
	type plain DatabaseConfig
	return struct {
		plain          `yaml:",inline"`
		ConnectTimeout string `yaml:"connect_timeout"`
	}{plain(d), d.ConnectTimeout.String()}, nil
}

type OutputConfig struct {
	BaseDir     string `koanf:"base_dir" yaml:"base_dir"`
	DirName     string `koanf:"dir_name" yaml:"dir_name"`
	ClassSuffix string `koanf:"class_suffix" yaml:"class_suffix"`
}

type FormatConfig struct {
	Formatter       string `koanf:"formatter" yaml:"formatter"`
	PrintWidth      int    `koanf:"print_width" yaml:"print_width"`
	PrettierCommand string `koanf:"prettier_command" yaml:"prettier_command"`
}

type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// UploadConfig enables mirroring generated files to a MinIO bucket.
type UploadConfig struct {
	Enabled   bool   `koanf:"enabled" yaml:"enabled"`
	Endpoint  string `koanf:"endpoint" yaml:"endpoint"`
	AccessKey string `koanf:"access_key" yaml:"access_key"`
	SecretKey string `koanf:"secret_key" yaml:"secret_key"`
	UseSSL    bool   `koanf:"use_ssl" yaml:"use_ssl"`
	Region    string `koanf:"region" yaml:"region"`
	Bucket    string `koanf:"bucket" yaml:"bucket"`
	Prefix    string `koanf:"prefix" yaml:"prefix"`
}

type ServeConfig struct {
	Addr string `koanf:"addr" yaml:"addr"`
}

// OutputDir is where DTO files are written: <base_dir>/<dir_name>.
func (c *Config) OutputDir() string {
	return joinPath(c.Output.BaseDir, c.Output.DirName)
}

// DatabaseConfig converts to the driver-level configuration.
func (c *Config) DatabaseConfig() *database.Config {
	cfg := database.DefaultConfig(c.Database.DSN)
	cfg.Driver = database.Driver(c.Database.Driver)
	if c.Database.ConnectTimeout > 0 {
		cfg.ConnectTimeout = c.Database.ConnectTimeout
	}
	if c.Database.MaxConns > 0 {
		cfg.MaxConns = c.Database.MaxConns
	}
	return cfg
}

func (c *Config) FormatterConfig() format.Config {
	return format.Config{
		Name:            c.Format.Formatter,
		PrintWidth:      c.Format.PrintWidth,
		PrettierCommand: c.Format.PrettierCommand,
	}
}

func (c *Config) LoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	return cfg
}

// FilestoreConfig returns the MinIO settings for the upload mirror.
func (c *Config) FilestoreConfig() *filestore.Config {
	cfg := filestore.DefaultConfig(c.Upload.Endpoint, c.Upload.AccessKey, c.Upload.SecretKey)
	cfg.UseSSL = c.Upload.UseSSL
	cfg.Region = c.Upload.Region
	cfg.Bucket = c.Upload.Bucket
	return cfg
}
