package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

const (
	EnvAddr     = "STOREFRONT_ADDR"
	EnvLogLevel = "STOREFRONT_LOG_LEVEL"
)

// LoadOptions selects where configuration comes from.
type LoadOptions struct {
	// ConfigPath is a YAML file; empty means DefaultConfig.
	ConfigPath string
	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string
	// Lookup reads the process environment; nil means os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Load resolves the configuration: file (or defaults), then dotenv values,
// then the process environment, which wins over the dotenv file.
func Load(opts LoadOptions) (*Config, error) {
	var cfg *Config
	if strings.TrimSpace(opts.ConfigPath) == "" {
		cfg = DefaultConfig()
	} else {
		parsed, err := ParseConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	fileEnv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if err := applyEnv(cfg, fileEnv, lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, sferrors.NewParseError(path, extractLine(err), err)
	}
	return values, nil
}

func applyEnv(cfg *Config, fileEnv map[string]string, lookup func(string) (string, bool)) error {
	get := func(key string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return strings.TrimSpace(fileEnv[key])
	}

	if addr := get(EnvAddr); addr != "" {
		if !strings.Contains(addr, ":") {
			addr = ":" + addr
		}
		cfg.Server.Addr = addr
	}
	if level := get(EnvLogLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}

	return ValidateConfig(cfg)
}
