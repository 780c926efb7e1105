package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webopen.dev/webopen"
)

func TestBrowsersCommand(t *testing.T) {
	t.Run("lists every platform in the registry", func(t *testing.T) {
		out, err := runWebopen(t, configPath(t, ""), "browsers", "--color", "never")
		require.NoError(t, err)
		require.Contains(t, out, "darwin")
		require.Contains(t, out, "linux")
		require.Contains(t, out, "windows")
		require.Contains(t, out, "open -a 'Google Chrome' URL")
		require.Contains(t, out, "xdg-open URL")
		require.Contains(t, out, "cmd /c start link URL")
	})

	t.Run("marks the current platform", func(t *testing.T) {
		out, err := runWebopen(t, configPath(t, ""), "browsers", "--color", "never")
		require.NoError(t, err)
		require.Contains(t, out, string(webopen.DetectOS())+" (current)")
	})

	t.Run("limits the listing to one platform", func(t *testing.T) {
		out, err := runWebopen(t, configPath(t, ""), "browsers", "--os", "windows", "--color", "never")
		require.NoError(t, err)
		require.Contains(t, out, "windows")
		require.Contains(t, out, "cmd /c start link URL")
		require.NotContains(t, out, "darwin")
	})

	t.Run("fails for a platform without a registry entry", func(t *testing.T) {
		_, err := runWebopen(t, configPath(t, ""), "browsers", "--os", "beos")
		require.ErrorIs(t, err, webopen.ErrUnsupportedOS)
		require.EqualError(t, err, "unsupported operating system: beos")
	})

	t.Run("quiet suppresses the listing", func(t *testing.T) {
		out, err := runWebopen(t, configPath(t, ""), "browsers", "--quiet")
		require.NoError(t, err)
		require.Empty(t, out)
	})
}
