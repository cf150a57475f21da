package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bookarc/internal/flagx"
	"github.com/dmitrijs2005/bookarc/internal/timex"
)

// jsonConfig is used only for unmarshalling. Pointer fields tell an absent
// key apart from a zero value.
type jsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	Region            *string         `json:"region"`
	IdentityClientID  *string         `json:"identity_client_id"`
	IdentityEndpoint  *string         `json:"identity_endpoint"`
	SessionDBPath     *string         `json:"session_db_path"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	RequestsPerSecond *float64        `json:"requests_per_second"`
	SafeUploads       *bool           `json:"safe_uploads"`
	LogLevel          *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file passed via -c or -config. No flag
// means no file.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.Region, jc.Region)
	setIf(&cfg.IdentityClientID, jc.IdentityClientID)
	setIf(&cfg.IdentityEndpoint, jc.IdentityEndpoint)
	setIf(&cfg.SessionDBPath, jc.SessionDBPath)
	setIf(&cfg.RequestsPerSecond, jc.RequestsPerSecond)
	setIf(&cfg.SafeUploads, jc.SafeUploads)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
