// Package config persists the tool's configuration and the current draft
// as JSON files in the user's config directory. Secrets can be supplied or
// overridden through environment variables so they never have to live on
// disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pseudofractal/Shiryoku/pkg/compiler"
	"github.com/pseudofractal/Shiryoku/pkg/mailer"
)

// EnvDir overrides the config directory location when set. Used mostly by
// tests, occasionally by people who keep dotfiles elsewhere.
const EnvDir = "SHIRYOKU_CONFIG_DIR"

// Config is everything the tool needs besides the draft itself.
type Config struct {
	Identity        compiler.Identity `json:"identity"`
	SMTPHost        string            `json:"smtp_host"`
	SMTPPort        int               `json:"smtp_port"`
	SMTPUsername    string            `json:"smtp_username"`
	SMTPAppPassword string            `json:"smtp_app_password"`
	WorkerURL       string            `json:"worker_url"`
	APISecret       string            `json:"api_secret"`
}

// Default returns a Config with the fixed relay and footer defaults set.
func Default() Config {
	return Config{
		Identity: compiler.Identity{FooterColor: compiler.DefaultFooterColor},
		SMTPHost: mailer.DefaultSMTPHost,
		SMTPPort: mailer.DefaultSMTPPort,
	}
}

// Dir returns the directory holding the config and draft files, creating
// it if needed.
func Dir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	dir := filepath.Join(base, "shiryoku")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// Load reads the config file, falling back to defaults when it does not
// exist yet, then applies environment overrides for the secret-bearing
// fields.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run.
	case err != nil:
		return Config{}, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if cfg.Identity.FooterColor == "" {
		cfg.Identity.FooterColor = compiler.DefaultFooterColor
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = mailer.DefaultSMTPHost
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = mailer.DefaultSMTPPort
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config back as pretty-printed JSON, owner-readable only.
func (c Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"SHIRYOKU_SMTP_USERNAME": &cfg.SMTPUsername,
		"SHIRYOKU_SMTP_PASSWORD": &cfg.SMTPAppPassword,
		"SHIRYOKU_WORKER_URL":    &cfg.WorkerURL,
		"SHIRYOKU_API_SECRET":    &cfg.APISecret,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}
