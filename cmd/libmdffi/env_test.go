package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhilem-ai/mdffi"
	"github.com/yhilem-ai/mdffi/internal/buffer"
	"github.com/yhilem-ai/mdffi/internal/strbox"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func restoreLoggers(t *testing.T) {
	t.Helper()
	root, buf := mdffi.Logger(), buffer.Logger()
	t.Cleanup(func() {
		mdffi.SetLogger(root)
		buffer.SetLogger(buf)
	})
}

func TestConfigureDefaults(t *testing.T) {
	restoreLoggers(t)
	require.NoError(t, configure(lookupFrom(nil)))
	assert.Equal(t, 0, strbox.Quarantined())
}

func TestConfigureDebugAlloc(t *testing.T) {
	restoreLoggers(t)
	t.Cleanup(func() { strbox.SetQuarantine(0) })

	require.NoError(t, configure(lookupFrom(map[string]string{envDebugAlloc: " 4 "})))

	h := newTestOptions(t)
	p, n := goBuffer("x")
	takeString(t, markdownToHTML(h, p, n))
	assert.Equal(t, 1, strbox.Quarantined())
}

func TestConfigureRejectsBadValues(t *testing.T) {
	restoreLoggers(t)

	err := configure(lookupFrom(map[string]string{envLog: "chatty"}))
	assert.ErrorContains(t, err, envLog)

	err = configure(lookupFrom(map[string]string{envDebugAlloc: "lots"}))
	assert.ErrorContains(t, err, envDebugAlloc)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))

	l, err = newLogger("OFF")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(2))

	l, err = newLogger("warn")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
	assert.False(t, l.Core().Enabled(0))
}
