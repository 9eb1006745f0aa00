package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutesCommandListsTable(t *testing.T) {
	stdout, _, err := execute(t, "routes")
	require.NoError(t, err)

	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "/signUp")
	require.Contains(t, stdout, "404")
}
