package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"webopen.dev/webopen"
)

func TestRenderRegistry(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("lists every platform with its launcher commands", func(t *testing.T) {
		out := RenderRegistry(webopen.SupportedOS(), webopen.Darwin)

		require.Contains(t, out, "darwin (current)")
		require.Contains(t, out, "linux")
		require.Contains(t, out, "windows")
		require.Contains(t, out, "open URL")
		require.Contains(t, out, "open -a 'Google Chrome' URL")
		require.Contains(t, out, "open -a Safari URL")
		require.Contains(t, out, "xdg-open URL")
		require.Contains(t, out, "cmd /c start link URL")
	})

	t.Run("marks only the host platform as current", func(t *testing.T) {
		out := RenderRegistry(webopen.SupportedOS(), webopen.Linux)

		require.Contains(t, out, "linux (current)")
		require.NotContains(t, out, "darwin (current)")
		require.NotContains(t, out, "windows (current)")
	})

	t.Run("no platform is current on an unsupported host", func(t *testing.T) {
		out := RenderRegistry(webopen.SupportedOS(), webopen.OS("freebsd"))

		require.NotContains(t, out, "(current)")
	})

	t.Run("platforms without browsers render a bare heading", func(t *testing.T) {
		out := RenderRegistry([]webopen.OS{webopen.OS("freebsd")}, webopen.Linux)

		require.Equal(t, "freebsd\n", out)
	})

	t.Run("named browsers are macOS only", func(t *testing.T) {
		out := RenderRegistry([]webopen.OS{webopen.Linux, webopen.Windows}, webopen.OS(""))

		require.Contains(t, out, "default")
		require.NotContains(t, out, "firefox")
		require.NotContains(t, out, "safari")
	})
}

func TestColorPlatform(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("appends the current marker", func(t *testing.T) {
		require.Equal(t, "darwin (current)", ColorPlatform("darwin", true))
	})

	t.Run("leaves other platforms unmarked", func(t *testing.T) {
		require.Equal(t, "linux", ColorPlatform("linux", false))
	})

	t.Run("passes unknown platforms through", func(t *testing.T) {
		require.Equal(t, "freebsd", ColorPlatform("freebsd", false))
	})
}
