// Package credentials acquires the Google service account credential for
// an export run. The payload comes from the GOOGLE_CREDS_JSON environment
// variable or from a pre-provisioned file in the credentials directory;
// a payload materialized from the environment never outlives the run.
package credentials

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

const (
	// EnvVar carries the full service account JSON payload.
	EnvVar = "GOOGLE_CREDS_JSON"

	// FileName is the conventional credential file name inside the
	// credentials directory.
	FileName = "google_service_account.json"

	scope = "https://www.googleapis.com/auth/spreadsheets"
)

// Credential is an authenticated handle to the Sheets API, valid for the
// duration of one run. Close must be called on every exit path.
type Credential struct {
	conf         *jwt.Config
	materialized string
}

// Acquire loads the credential, preferring the environment variable over
// the local file. An environment payload is materialized to the
// conventional path with mode 0600 so the run looks the same either way,
// and is deleted by Close. A pre-provisioned file belongs to the user and
// is left in place.
func Acquire(dir string) (*Credential, error) {
	path := filepath.Join(dir, FileName)

	materialized := ""
	if payload := os.Getenv(EnvVar); payload != "" {
		// Never clobber a pre-provisioned file; the environment still
		// takes precedence as the payload source.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return nil, fmt.Errorf("error while creating credentials dir: %w", err)
			}
			if err := os.WriteFile(path, []byte(payload), 0600); err != nil {
				return nil, fmt.Errorf("error while materializing credentials: %w", err)
			}
			materialized = path
		}

		conf, err := google.JWTConfigFromJSON([]byte(payload), scope)
		if err != nil {
			removeIfMaterialized(materialized)
			return nil, fmt.Errorf("malformed service account credentials: %w", err)
		}
		return &Credential{conf: conf, materialized: materialized}, nil
	}

	credBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no credentials found: set %s or provide %s", EnvVar, path)
		}
		return nil, fmt.Errorf("error while reading credentials file: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(credBytes, scope)
	if err != nil {
		return nil, fmt.Errorf("malformed service account credentials: %w", err)
	}

	return &Credential{conf: conf, materialized: ""}, nil
}

// Client returns an authenticated HTTP client for the Sheets API.
func (c *Credential) Client(ctx context.Context) *http.Client {
	return c.conf.Client(ctx)
}

// Email reports the service account identity, for logging.
func (c *Credential) Email() string {
	return c.conf.Email
}

// Close removes the materialized credential file, if any. Safe to call
// more than once.
func (c *Credential) Close() error {
	path := c.materialized
	c.materialized = ""
	return removeIfMaterialized(path)
}

func removeIfMaterialized(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error while removing materialized credentials: %w", err)
	}
	return nil
}
