package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGalleryStaticOutput(t *testing.T) {
	stdout, _, err := execute(t, "gallery")
	require.NoError(t, err)

	require.Contains(t, stdout, "Storefront • Buttons")
	require.Contains(t, stdout, "primary-outline")
	require.Contains(t, stdout, "(empty: ")
}

func TestGalleryUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`site:
  brand: Corner Shop
gallery:
  - name: checkout
    label: Checkout
    as: button
    color: success
`), 0o600))

	stdout, _, err := execute(t, "--config", path, "gallery", "--static")
	require.NoError(t, err)
	require.Contains(t, stdout, "checkout")
	require.NotContains(t, stdout, "primary-outline")
}

func TestGalleryRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  brand: Shop\nunknown: true\n"), 0o600))

	_, _, err := execute(t, "--config", path, "gallery")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to gallery: loading configuration")
}
