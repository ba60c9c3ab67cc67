package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/adomaitisc/gupy-automation/internal/network"
	"github.com/adomaitisc/gupy-automation/internal/scraper"
	"github.com/adomaitisc/gupy-automation/internal/store"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "gupy"
	ConfigFileName = "config.json"
)

// Config holds the static settings of the fetch and apply phases.
type Config struct {
	QueryURL       string   `json:"query_url" env:"GUPY_QUERY_URL"`
	ApplyURL       string   `json:"apply_url" env:"GUPY_APPLY_URL"`
	SearchQueries  []string `json:"search_queries" env:"GUPY_SEARCH_QUERIES" envSeparator:","`
	SearchLimit    int      `json:"search_limit" env:"GUPY_SEARCH_LIMIT"`
	RemoteOnly     bool     `json:"remote_only" env:"GUPY_REMOTE_ONLY"`
	Enrich         bool     `json:"enrich" env:"GUPY_ENRICH"`
	OutputPath     string   `json:"output_path" env:"GUPY_OUTPUT"`
	CookieEnv      string   `json:"cookie_env" env:"GUPY_COOKIE_ENV"`
	TimeoutSeconds int      `json:"timeout_seconds" env:"GUPY_TIMEOUT_SECONDS"`
	Proxy          string   `json:"proxy" env:"GUPY_PROXY"`
}

func DefaultConfig() Config {
	return Config{
		QueryURL: scraper.DefaultQueryURL,
		ApplyURL: scraper.DefaultApplyURL,
		SearchQueries: []string{
			"Estagio Front End",
			"Estagio Back End",
			"Estagio Full Stack",
			"Estagio Mobile",
			"Estagio Desenvolvedor",
			"Desenvolvedor Junior",
		},
		SearchLimit:    20,
		RemoteOnly:     false,
		Enrich:         true,
		OutputPath:     store.DefaultPath,
		CookieEnv:      network.DefaultCookieEnv,
		TimeoutSeconds: 30,
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadDotEnv loads KEY=VALUE pairs from files (default ".env") into the
// process environment. Missing files are ignored and set variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				continue
			}
			return apperr.Wrapf(err, apperr.KindConfiguration, "load %s", file)
		}
	}
	return nil
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom layers the JSON5 file at path (if any) and then GUPY_*
// environment variables over the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	case len(strings.TrimSpace(string(data))) > 0:
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, apperr.Wrapf(err, apperr.KindConfiguration, "parse %s", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, apperr.Wrapf(err, apperr.KindConfiguration, "parse environment")
	}
	return cfg, nil
}

// Validate reports settings that would produce malformed requests.
func (c Config) Validate() error {
	if c.SearchLimit <= 0 {
		return apperr.Configurationf("search_limit must be positive, got %d", c.SearchLimit)
	}
	for _, token := range []string{scraper.TitleToken, scraper.LimitToken} {
		if !strings.Contains(c.QueryURL, token) {
			return apperr.Configurationf("query_url %q lacks the %s placeholder", c.QueryURL, token)
		}
	}
	if c.Enrich {
		for _, token := range []string{scraper.URLToken, scraper.IDToken} {
			if !strings.Contains(c.ApplyURL, token) {
				return apperr.Configurationf("apply_url %q lacks the %s placeholder", c.ApplyURL, token)
			}
		}
	}
	if c.TimeoutSeconds < 0 {
		return apperr.Configurationf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

func (c Config) SearchParams() models.SearchParams {
	return models.SearchParams{
		QueryTemplate: c.QueryURL,
		ApplyTemplate: c.ApplyURL,
		Queries:       append([]string(nil), c.SearchQueries...),
		Limit:         c.SearchLimit,
		RemoteOnly:    c.RemoteOnly,
		Enrich:        c.Enrich,
	}
}

func (c Config) NetworkOptions() network.Options {
	return network.Options{
		Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
		Proxy:   strings.TrimSpace(c.Proxy),
	}
}

// Init writes a default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
