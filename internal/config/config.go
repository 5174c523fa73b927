package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"toggl-cli/internal/report"
	"toggl-cli/internal/resolve"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "~/.togglrc"

// ErrCreated is returned by Load after writing a fresh default file.
var ErrCreated = errors.New("missing config file; a default has been created for editing")

// Config holds file and environment driven configuration. It is loaded once
// per invocation and passed by value.
type Config struct {
	Toggl struct {
		APIToken string
		Username string
		Password string
		BaseURL  string // default: https://api.track.toggl.com
	}
	Options struct {
		Timezone             string
		Location             *time.Location
		DayLayout            string
		EntryLayout          string
		UseManDays           bool
		ShowArchivedProjects bool
		WebBrowserCmd        string
		DefaultWorkspace     string
	}
	Cache struct {
		Enabled    bool
		Path       string
		MaxAgeDays float64
	}
	MySQL struct {
		DSN string // e.g., user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
	}
	Aliases resolve.Aliases
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetDefault("auth.api_token", "")
	v.SetDefault("auth.username", "user@example.com")
	v.SetDefault("auth.password", "secretpasswd")
	v.SetDefault("options.timezone", "UTC")
	v.SetDefault("options.web_browser_cmd", "w3m")
	v.SetDefault("options.datefmt", report.DefaultDayLayout)
	v.SetDefault("options.entry_datefmt", report.DefaultEntryLayout)
	v.SetDefault("options.use_mandays", false)
	v.SetDefault("options.show_archived_projects", false)
	v.SetDefault("options.cache_enabled", false)
	v.SetDefault("options.cache_path", "~/.toggl")
	v.SetDefault("options.max_cache_age_days", 0)
	v.SetDefault("options.default_workspace", "")
	v.SetDefault("api.base_url", "https://api.track.toggl.com")
	v.SetDefault("mysql.dsn", "")

	_ = v.BindEnv("auth.api_token", "TOGGL_API_TOKEN")
	_ = v.BindEnv("api.base_url", "TOGGL_BASE_URL")
	_ = v.BindEnv("options.default_workspace", "TOGGL_WORKSPACE_ID")
	_ = v.BindEnv("mysql.dsn", "MYSQL_DSN")
	return v
}

// Load reads the INI file at path ("" means DefaultPath), applying
// environment overrides. A missing file is replaced by a default one and
// ErrCreated is returned.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = DefaultPath
	}
	path, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return cfg, fmt.Errorf("error creating config directory: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return cfg, fmt.Errorf("error creating config file: %w", err)
		}
		return cfg, fmt.Errorf("%s: %w", path, ErrCreated)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config

	cfg.Toggl.APIToken = strings.TrimSpace(v.GetString("auth.api_token"))
	cfg.Toggl.Username = strings.TrimSpace(v.GetString("auth.username"))
	cfg.Toggl.Password = strings.TrimSpace(v.GetString("auth.password"))
	if cfg.Toggl.APIToken == "" && (cfg.Toggl.Username == "" || cfg.Toggl.Password == "") {
		return cfg, errors.New("auth.api_token or auth.username and auth.password are required")
	}
	cfg.Toggl.BaseURL = v.GetString("api.base_url")

	cfg.Options.Timezone = v.GetString("options.timezone")
	loc, err := time.LoadLocation(cfg.Options.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("options.timezone: %w", err)
	}
	cfg.Options.Location = loc
	cfg.Options.DayLayout = v.GetString("options.datefmt")
	cfg.Options.EntryLayout = v.GetString("options.entry_datefmt")
	cfg.Options.UseManDays = v.GetBool("options.use_mandays")
	cfg.Options.ShowArchivedProjects = v.GetBool("options.show_archived_projects")
	cfg.Options.WebBrowserCmd = v.GetString("options.web_browser_cmd")
	cfg.Options.DefaultWorkspace = v.GetString("options.default_workspace")

	cfg.Cache.Enabled = v.GetBool("options.cache_enabled")
	cfg.Cache.MaxAgeDays = v.GetFloat64("options.max_cache_age_days")
	cfg.Cache.Path, err = ExpandHome(v.GetString("options.cache_path"))
	if err != nil {
		return cfg, err
	}

	cfg.MySQL.DSN = v.GetString("mysql.dsn")

	cfg.Aliases = resolve.Aliases{}
	for k, val := range v.GetStringMapString("aliases") {
		cfg.Aliases[k] = val
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
