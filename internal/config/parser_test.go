package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sferrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `site:
  brand: "Corner Shop"
server:
  addr: "127.0.0.1:9090"
  cache_size: 8
logging:
  level: debug
nav:
  - label: Home
    path: /
  - label: Deals
    path: /deals
gallery:
  - name: buy
    label: Buy
    as: button
    color: success
    size: sm
  - name: join
    as: input
    type: submit
    value: Join
`

	invalidYAML := `site: [1, 2]
`

	unknownField := `site:
  brand: "Shop"
  colour: red
`

	missingBrand := `server:
  addr: ":8080"
`

	badKind := `site:
  brand: "Shop"
gallery:
  - name: odd
    as: checkbox
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Corner Shop", cfg.Site.Brand)
				require.Equal(t, "Corner Shop", cfg.Site.Title)
				require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
				require.Equal(t, 8, cfg.Server.CacheSize)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.Len(t, cfg.Nav, 2)
				require.Len(t, cfg.Gallery, 2)
				require.Equal(t, "submit", cfg.Gallery[1].Type)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *sferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown fields are rejected",
			contents: unknownField,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *sferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "missing brand returns validation error",
			contents: missingBrand,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *sferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "site.brand", validationErr.Field)
			},
		},
		{
			name:     "empty file fails validation rather than parsing",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *sferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name:     "unknown output kind is rejected",
			contents: badKind,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *sferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "gallery[0].as", validationErr.Field)
				require.Contains(t, validationErr.Message, "button_kind")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *sferrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
