package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	BorderColor string `toml:"border_color"`
	TitleColor  string `toml:"title_color"`
	CursorColor string `toml:"cursor_color"`
	ErrorColor  string `toml:"error_color"`
	StatusColor string `toml:"status_color"`
}

type Config struct {
	Theme Theme `toml:"theme"`
	// TickMS is the idle period after which the event source emits a tick.
	TickMS int `toml:"tick_ms"`
	// CachePages bounds the page cache; zero keeps every page loaded.
	CachePages int    `toml:"cache_pages"`
	LogFile    string `toml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			BorderColor: "#FFFFFF",
			TitleColor:  "#87FFFF",
			CursorColor: "#FFFF00",
			ErrorColor:  "#FF0000",
			StatusColor: "#AAAAAA",
		},
		TickMS: 200,
	}
}

func (c *Config) TickRate() time.Duration {
	if c.TickMS <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.TickMS) * time.Millisecond
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sedecim.toml"
	}
	return filepath.Join(home, ".config", "sedecim", "sedecim.toml")
}

// Load reads the user's configuration file. A missing file yields the
// defaults; a malformed one yields the defaults and the decode error.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

type Styles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Normal lipgloss.Style
	Cursor lipgloss.Style
	Caret  lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.BorderColor)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TitleColor)),
		Normal: lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.CursorColor)).
			Bold(true).
			Blink(true).
			Underline(true),
		Caret: lipgloss.NewStyle().
			Blink(true).
			Underline(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorColor)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor)),
	}
}
