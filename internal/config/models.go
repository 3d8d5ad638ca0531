package config

import (
	"fmt"

	"github.com/muurk/mystore/internal/inventory"
)

// CurrentVersion is the config file format version.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version     int                 `yaml:"version"`
	Preferences *Preferences        `yaml:"preferences,omitempty"`
	Seed        []inventory.Product `yaml:"seed,omitempty"` // Loaded into the store at start-up; never written back
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultUsername string `yaml:"default_username,omitempty"` // Prefilled on the login screen
	DefaultSort     string `yaml:"default_sort,omitempty"`     // "", "low-to-high" or "high-to-low"
	Currency        string `yaml:"currency"`                   // Prefix for displayed prices
	StartRoute      string `yaml:"start_route,omitempty"`      // "/", "/dashboard", ...
	LogLevel        string `yaml:"log_level,omitempty"`        // debug, info, warn, error; empty = silent
	LogFile         string `yaml:"log_file,omitempty"`         // Defaults to <config dir>/mystore.log
}

// DefaultPreferences returns the preferences used when the file has none.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Currency:   "$",
		StartRoute: "/",
	}
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// SortMode parses DefaultSort.
func (p *Preferences) SortMode() (inventory.SortMode, error) {
	if p == nil {
		return inventory.SortNone, nil
	}
	return inventory.ParseSortMode(p.DefaultSort)
}

// Validate checks the fields that would otherwise fail later at start-up.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if _, err := s.Preferences.SortMode(); err != nil {
		return fmt.Errorf("preferences.default_sort: %w", err)
	}
	return nil
}

// ExampleSeed is written by CreateDefaultConfig so a first run has
// something to look at.
func ExampleSeed() []inventory.Product {
	return []inventory.Product{
		{Title: "Blue Mug", Price: "12", Quantity: "40", Category: "Kitchen", Description: "Stoneware mug, 350ml."},
		{Title: "Claw Hammer", Price: "30", Quantity: "8", Category: "Tools", Description: "16oz steel hammer with fibreglass handle."},
		{Title: "Tea Towel", Price: "5", Quantity: "120", Category: "Kitchen", Description: "Cotton, pack of two."},
	}
}
