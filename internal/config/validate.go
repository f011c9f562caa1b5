package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/koustreak/dtogen/internal/format"
	"go.yaml.in/yaml/v3"
)

func invalid(msg string, args ...any) error {
	return errs.New(errs.ErrKindInvalidInput, fmt.Sprintf(msg, args...))
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if !database.Driver(c.Database.Driver).Valid() {
		return invalid("unknown database driver %q (want one of %v)", c.Database.Driver, database.Drivers)
	}
	if c.Database.DSN == "" {
		return invalid("database.dsn is required (set it in dtogen.yaml, --dsn or %s)", EnvDatabaseURL)
	}
	if c.Database.Schema == "" {
		return invalid("database.schema is required for %s", c.Database.Driver)
	}
	if c.Output.DirName == "" {
		return invalid("output.dir_name must not be empty")
	}
	if !slices.Contains(format.Names, c.Format.Formatter) {
		return invalid("unknown formatter %q (want one of %v)", c.Format.Formatter, format.Names)
	}
	if c.Format.PrintWidth <= 0 {
		return invalid("format.print_width must be positive, got %d", c.Format.PrintWidth)
	}
	if c.Upload.Enabled {
		if c.Upload.Endpoint == "" {
			return invalid("upload.endpoint is required when upload is enabled")
		}
		if c.Upload.Bucket == "" {
			return invalid("upload.bucket is required when upload is enabled")
		}
	}
	return nil
}

const redacted = "xxxxx"

// Redacted returns a copy with credentials masked.
func (c *Config) Redacted() *Config {
	cp := *c
	cp.Database.DSN = redactDSN(c.Database.DSN)
	if cp.Upload.SecretKey != "" {
		cp.Upload.SecretKey = redacted
	}
	return &cp
}

// YAML renders the redacted configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.Redacted())
}

// kvPassword matches password=<value> in keyword/value DSNs such as
// "host=db user=app password='s3 cret'".
var kvPassword = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:\\.|[^'])*'|\S+)`)

// redactDSN masks the password in URL-style DSNs (postgres://u:p@h/db,
// ...?password=p), keyword/value DSNs (host=h password=p) and go-sql-driver
// style DSNs (u:p@tcp(h)/db).
func redactDSN(dsn string) string {
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil {
			return redactURL(u, dsn)
		}
	}

	if kvPassword.MatchString(dsn) {
		return kvPassword.ReplaceAllString(dsn, "${1}"+redacted)
	}

	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	if colon := strings.Index(dsn[:at], ":"); colon >= 0 {
		return dsn[:colon+1] + redacted + dsn[at:]
	}
	return dsn
}

func redactURL(u *url.URL, dsn string) string {
	changed := false
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
			changed = true
		}
	}

	q := u.Query()
	for key := range q {
		if strings.EqualFold(key, "password") {
			q[key] = []string{redacted}
			changed = true
		}
	}
	if !changed {
		return dsn
	}
	u.RawQuery = q.Encode()
	return u.String()
}
