// Package config holds the game's settings. Values come from built-in
// defaults, then the saved preferences file, then a .env file, then
// LOOPESCAPE_* environment variables; later sources win.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"loopescape/pkg/engine/logging"
)

const (
	appDir    = "loopescape"
	prefsFile = "preferences.json"
	envPrefix = "LOOPESCAPE_"
)

// Supported room layouts.
const (
	RoomsCompact  = 10
	RoomsStandard = 14
)

// Config is the full runtime configuration.
type Config struct {
	Fullscreen    bool
	WindowWidth   int
	WindowHeight  int
	LogicalWidth  int
	LogicalHeight int

	MusicOn     bool
	MusicVolume float64
	SFXVolume   float64

	AssetDir  string
	LocaleDir string
	Language  string
	LogLevel  string

	RoomCount        int
	TeleportCooldown time.Duration

	// Bindings maps raw key codes to action ids.
	Bindings map[string]string

	prefsPath string
}

// preferences is the subset of Config the player can change in game.
type preferences struct {
	Fullscreen  *bool             `json:"fullscreen,omitempty"`
	MusicOn     *bool             `json:"music_on,omitempty"`
	MusicVolume *float64          `json:"music_volume,omitempty"`
	SFXVolume   *float64          `json:"sfx_volume,omitempty"`
	Language    string            `json:"language,omitempty"`
	Bindings    map[string]string `json:"bindings,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Fullscreen:       true,
		WindowWidth:      1280,
		WindowHeight:     720,
		LogicalWidth:     1920,
		LogicalHeight:    1080,
		MusicOn:          true,
		MusicVolume:      0.5,
		SFXVolume:        0.8,
		AssetDir:         "assets",
		LocaleDir:        "locales",
		Language:         "en_US",
		LogLevel:         "info",
		RoomCount:        RoomsStandard,
		TeleportCooldown: 500 * time.Millisecond,
		Bindings:         map[string]string{},
	}
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the process-wide configuration.
func Current() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the process-wide configuration.
func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}

// DefaultPrefsPath returns the preferences file under the user config dir.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, prefsFile)
}

// Load builds the configuration from every source using the default
// locations and installs it as Current.
func Load() (*Config, error) {
	c, err := LoadFrom(DefaultPrefsPath(), ".env")
	Set(c)
	return c, err
}

// LoadFrom builds the configuration from the given preferences file and .env
// file. Missing files are not errors. A malformed source is reported but the
// remaining sources still apply, so the returned config is always usable.
func LoadFrom(prefsPath, envFile string) (*Config, error) {
	c := Default()
	c.prefsPath = prefsPath

	var errs []error
	if err := c.loadPrefs(prefsPath); err != nil {
		errs = append(errs, err)
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("load %s: %w", envFile, err))
		}
	}
	errs = append(errs, c.applyEnv()...)
	c.normalize()
	return c, errors.Join(errs...)
}

func (c *Config) loadPrefs(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	var p preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse preferences %s: %w", path, err)
	}
	if p.Fullscreen != nil {
		c.Fullscreen = *p.Fullscreen
	}
	if p.MusicOn != nil {
		c.MusicOn = *p.MusicOn
	}
	if p.MusicVolume != nil {
		c.MusicVolume = *p.MusicVolume
	}
	if p.SFXVolume != nil {
		c.SFXVolume = *p.SFXVolume
	}
	if p.Language != "" {
		c.Language = p.Language
	}
	for code, action := range p.Bindings {
		c.Bindings[code] = action
	}
	return nil
}

func (c *Config) applyEnv() []error {
	var errs []error
	boolVar := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	floatVar := func(name string, dst *float64) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	intVar := func(name string, dst *int) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	stringVar := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	boolVar("FULLSCREEN", &c.Fullscreen)
	boolVar("MUSIC", &c.MusicOn)
	floatVar("MUSIC_VOLUME", &c.MusicVolume)
	floatVar("SFX_VOLUME", &c.SFXVolume)
	stringVar("ASSET_DIR", &c.AssetDir)
	stringVar("LOCALE_DIR", &c.LocaleDir)
	stringVar("LANG", &c.Language)
	stringVar("LOG_LEVEL", &c.LogLevel)
	intVar("ROOMS", &c.RoomCount)

	ms := -1
	intVar("TELEPORT_COOLDOWN_MS", &ms)
	if ms >= 0 {
		c.TeleportCooldown = time.Duration(ms) * time.Millisecond
	}
	return errs
}

// normalize pulls out-of-range values back to something playable.
func (c *Config) normalize() {
	c.MusicVolume = clampUnit(c.MusicVolume)
	c.SFXVolume = clampUnit(c.SFXVolume)
	if c.RoomCount != RoomsCompact && c.RoomCount != RoomsStandard {
		l := logging.New("config")
		l.Warn().Int("rooms", c.RoomCount).Msg("unsupported room count, using 14")
		c.RoomCount = RoomsStandard
	}
}

// Save writes the player-adjustable settings to the preferences file.
func (c *Config) Save() error {
	if c.prefsPath == "" {
		return errors.New("save preferences: no preferences path")
	}
	p := preferences{
		Fullscreen:  &c.Fullscreen,
		MusicOn:     &c.MusicOn,
		MusicVolume: &c.MusicVolume,
		SFXVolume:   &c.SFXVolume,
		Language:    c.Language,
		Bindings:    c.Bindings,
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.prefsPath), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	if err := os.WriteFile(c.prefsPath, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// SetMusicVolume stores a clamped music volume and reports whether it changed.
func (c *Config) SetMusicVolume(v float64) bool {
	v = clampUnit(v)
	if v == c.MusicVolume {
		return false
	}
	c.MusicVolume = v
	return true
}

// PrefsPath returns where Save writes.
func (c *Config) PrefsPath() string {
	return c.prefsPath
}

// SetPrefsPath changes where Save writes.
func (c *Config) SetPrefsPath(path string) {
	c.prefsPath = path
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
