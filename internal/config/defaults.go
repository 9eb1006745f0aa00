package config

const (
	DefaultAddr      = ":8080"
	DefaultCacheSize = 64
	DefaultLogLevel  = "info"
)

// DefaultConfig returns the stock storefront: the E-Commerce brand, the four
// navigation links and a gallery covering every style axis and output kind.
func DefaultConfig() *Config {
	cfg := &Config{
		Site: Site{Brand: "E-Commerce", Title: "E-Commerce"},
		Logging: Logging{
			Level:         DefaultLogLevel,
			HumanReadable: true,
		},
		Nav:     DefaultNav(),
		Gallery: DefaultGallery(),
	}
	applyDefaults(cfg)
	return cfg
}

// DefaultNav returns the navigation links of the stock storefront.
func DefaultNav() []NavLink {
	return []NavLink{
		{Label: "Home", Path: "/"},
		{Label: "About", Path: "/about"},
		{Label: "Contact", Path: "/contact"},
		{Label: "Sign Up", Path: "/signup"},
	}
}

// DefaultGallery returns one entry per colour, variant, shape, size, state
// and input type, plus an input that deliberately builds to nothing.
func DefaultGallery() []ButtonSpec {
	return []ButtonSpec{
		{Name: "primary", Label: "Primary Button", As: "button", Color: "primary"},
		{Name: "secondary", Label: "Secondary Button", As: "button", Color: "secondary"},
		{Name: "success", Label: "Success Button", As: "button", Color: "success"},
		{Name: "danger", Label: "Danger Button", As: "button", Color: "danger"},
		{Name: "warning", Label: "Warning Button", As: "button", Color: "warning"},
		{Name: "info", Label: "Info Button", As: "button", Color: "info"},
		{Name: "light", Label: "Light Button", As: "button", Color: "light"},
		{Name: "dark", Label: "Dark Button", As: "button", Color: "dark"},
		{Name: "primary-outline", Label: "Primary Outline", As: "button", Color: "primary", Variant: "outline"},
		{Name: "primary-ghost", Label: "Primary Ghost", As: "button", Color: "primary", Variant: "ghost"},
		{Name: "primary-link", Label: "Primary Link", As: "link", Href: "/about", Color: "primary", Variant: "link"},
		{Name: "pill", Label: "Primary Rounded Pill", As: "button", Color: "primary", Shape: "pill"},
		{Name: "square", Label: "Primary Rounded 0", As: "button", Color: "primary", Shape: "square"},
		{Name: "small", Label: "Small Primary Button", As: "button", Size: "small"},
		{Name: "medium", Label: "Medium Primary Button", As: "button", Size: "medium"},
		{Name: "large", Label: "Large Primary Button", As: "button", Size: "large"},
		{Name: "disabled", Label: "Disabled Primary Button", As: "button", Disabled: true},
		{Name: "disabled-link", Label: "Disabled Link", As: "link", Href: "/contact", Variant: "outline", Disabled: true},
		{Name: "input-button", As: "input", Type: "button", Value: "Input Type Button"},
		{Name: "input-submit", As: "input", Type: "submit", Value: "Input Type Submit"},
		{Name: "input-reset", As: "input", Type: "reset", Value: "Input Type Reset"},
		{Name: "input-invalid", As: "input", Type: "checkbox", Value: "Never Rendered"},
		{Name: "icons", Label: "Button with Icons", As: "button", Leading: "←", Trailing: "→"},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.CacheSize == 0 {
		cfg.Server.CacheSize = DefaultCacheSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = cfg.Site.Brand
	}
	if len(cfg.Nav) == 0 {
		cfg.Nav = DefaultNav()
	}
}
