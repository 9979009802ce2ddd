package devops

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// AppConfig is the deployment configuration, loaded once from a YAML file
// with env overrides for the secrets.
type AppConfig struct {
	DSN                 string `yaml:"dsn"`
	Addr                string `yaml:"addr"`
	SigningSecret       string `yaml:"signingSecret"` // base64
	TimezoneOffsetHours int    `yaml:"timezoneOffsetHours"`
	MaxConnections      int    `yaml:"maxConnections"`
}

var (
	once    sync.Once
	cfg     AppConfig
	loadErr error
)

// LoadAppConfig reads the file named by ASISTAPP_CONFIG (default
// config.yaml). DSN and ASISTAPP_SIGNING_SECRET env vars win over the file
// so deployments can keep secrets out of it.
func LoadAppConfig() (AppConfig, error) {
	once.Do(func() {
		path := os.Getenv("ASISTAPP_CONFIG")
		if path == "" {
			path = "config.yaml"
		}

		parsed := AppConfig{
			Addr:           ":8080",
			MaxConnections: 10,
		}

		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &parsed); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		case os.IsNotExist(err):
			// env-only deployment
		default:
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}

		if dsn := os.Getenv("DSN"); dsn != "" {
			parsed.DSN = dsn
		}
		if secret := os.Getenv("ASISTAPP_SIGNING_SECRET"); secret != "" {
			parsed.SigningSecret = secret
		}

		if parsed.DSN == "" {
			loadErr = fmt.Errorf("no DSN configured")
			return
		}
		if parsed.SigningSecret == "" {
			loadErr = fmt.Errorf("no signing secret configured")
			return
		}

		cfg = parsed
	})

	return cfg, loadErr
}
