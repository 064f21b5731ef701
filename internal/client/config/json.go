package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/inkwell/internal/flagx"
	"github.com/dmitrijs2005/inkwell/internal/timex"
)

// jsonConfig is used only for unmarshalling. Absent keys keep the current
// value, hence the pointers.
type jsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	StateDSN          *string         `json:"state_dsn"`
	CookieFile        *string         `json:"cookie_file"`
	LogFormat         *string         `json:"log_format"`
	LogLevel          *string         `json:"log_level"`
	RevalidateSession *bool           `json:"revalidate_session"`
}

// parseJSON overlays cfg with the file named by -c or -config in args. It
// does nothing when neither flag is present.
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

	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.StateDSN, jc.StateDSN)
	set(&cfg.CookieFile, jc.CookieFile)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.RevalidateSession, jc.RevalidateSession)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
