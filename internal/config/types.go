package config

import (
	"time"
)

// Config represents the full storefront configuration document.
type Config struct {
	Site    Site         `yaml:"site"`
	Server  Server       `yaml:"server,omitempty"`
	Logging Logging      `yaml:"logging,omitempty"`
	Nav     []NavLink    `yaml:"nav,omitempty" validate:"omitempty,max=12,dive"`
	Gallery []ButtonSpec `yaml:"gallery,omitempty" validate:"omitempty,dive"`
}

// Site holds the branding rendered by the layout shell.
type Site struct {
	Brand string `yaml:"brand" validate:"required,min=1,max=60"`
	Title string `yaml:"title,omitempty" validate:"omitempty,max=120"`
}

// Server holds HTTP listener parameters. Timeouts are in seconds.
type Server struct {
	Addr         string `yaml:"addr,omitempty" validate:"omitempty,listen_addr"`
	CacheSize    int    `yaml:"cache_size,omitempty" validate:"omitempty,min=1,max=4096"`
	ReadTimeout  int    `yaml:"read_timeout,omitempty" validate:"omitempty,min=1,max=3600"`
	WriteTimeout int    `yaml:"write_timeout,omitempty" validate:"omitempty,min=1,max=3600"`
}

// ReadTimeoutDuration returns the read timeout, defaulting to ten seconds.
func (s Server) ReadTimeoutDuration() time.Duration {
	return seconds(s.ReadTimeout, 10)
}

// WriteTimeoutDuration returns the write timeout, defaulting to ten seconds.
func (s Server) WriteTimeoutDuration() time.Duration {
	return seconds(s.WriteTimeout, 10)
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}

// Logging controls the zerolog output.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label string `yaml:"label" validate:"required,max=40"`
	Path  string `yaml:"path" validate:"required,route_path"`
}

// ButtonSpec is the declarative form of a button used by the gallery page,
// the terminal preview and the action endpoints. Style fields are lenient:
// unknown values fall back to defaults and are reported as warnings.
type ButtonSpec struct {
	Name     string `yaml:"name" validate:"required,action_name"`
	Label    string `yaml:"label,omitempty" validate:"omitempty,max=80"`
	As       string `yaml:"as,omitempty" validate:"omitempty,button_kind"`
	Href     string `yaml:"href,omitempty"`
	Target   string `yaml:"target,omitempty"`
	Type     string `yaml:"type,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Variant  string `yaml:"variant,omitempty"`
	Shape    string `yaml:"shape,omitempty"`
	Size     string `yaml:"size,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Class    string `yaml:"class,omitempty"`
	Leading  string `yaml:"leading,omitempty"`
	Trailing string `yaml:"trailing,omitempty"`
}
