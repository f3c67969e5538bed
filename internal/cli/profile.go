package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Profile holds operator defaults so repeated commands do not need the same flags.
type Profile struct {
	Owner    string `mapstructure:"owner"`
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log_level"`
}

// LoadProfile reads ~/.config/ledgerctl/config.toml (or path, when set).
// Env var overrides use prefix LEDGERCTL_. A missing default profile is not an error.
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()

	v.SetDefault("owner", "")
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "info")

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "ledgerctl"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LEDGERCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read profile: %w", err)
		}
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	p.Output = strings.ToLower(strings.TrimSpace(p.Output))
	if p.Output != OutputText && p.Output != OutputJSON {
		return nil, fmt.Errorf("unsupported output format %q (want %s or %s)", p.Output, OutputText, OutputJSON)
	}
	return &p, nil
}
