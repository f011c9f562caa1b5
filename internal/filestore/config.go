package filestore

import "github.com/koustreak/dtogen/internal/errs"

// Config locates the MinIO bucket that mirrors generated DTOs.
type Config struct {
	// Endpoint is host:port, e.g. "localhost:9000".
	Endpoint string

	AccessKey string
	SecretKey string
	UseSSL    bool

	// Region is only needed for region-pinned S3-compatible servers.
	Region string

	// Bucket receives the uploads. It must already exist; dtogen never
	// creates buckets.
	Bucket string
}

// DefaultConfig returns a plain-HTTP config for endpoint.
func DefaultConfig(endpoint, accessKey, secretKey string) *Config {
	return &Config{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
	}
}

// Validate reports a missing endpoint or bucket.
func (c *Config) Validate() error {
	switch {
	case c == nil || c.Endpoint == "":
		return errs.New(errs.ErrKindInvalidInput, "filestore endpoint is required")
	case c.Bucket == "":
		return errs.New(errs.ErrKindInvalidInput, "filestore bucket is required")
	}
	return nil
}
