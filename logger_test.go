package radial_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/plus3/radial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := radial.Logger()
	require.NotNil(t, l)

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level), "default logger enabled for %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := radial.Logger()
	t.Cleanup(func() { radial.SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	radial.SetLogger(custom)

	assert.Same(t, custom, radial.Logger())

	radial.Logger().Info("spinning", "angle", 1.5)
	assert.Contains(t, buf.String(), "spinning")
	assert.Contains(t, buf.String(), "angle=1.5")

	t.Run("nil restores silent logger", func(t *testing.T) {
		radial.SetLogger(nil)
		require.NotNil(t, radial.Logger())
		assert.False(t, radial.Logger().Enabled(context.Background(), slog.LevelError))
	})
}
