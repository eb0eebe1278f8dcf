package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindow_Defaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "World in Motion", w.Title())
	assert.Equal(t, 500, w.Width())
	assert.Equal(t, 500, w.Height())
}

func TestNewEngineWindow_ClampsToLimits(t *testing.T) {
	w := newEngineWindow(
		WithTitle("demo"),
		WithMinSize(300, 300),
		WithMaxSize(800, 600),
		WithSize(100, 4000),
	)
	assert.Equal(t, "demo", w.Title())
	assert.Equal(t, 300, w.Width())
	assert.Equal(t, 600, w.Height())
}

func TestEngineWindow_Uninitialized(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
	assert.NotPanics(t, w.RequestClose)

	// the loop exits immediately without a platform window
	called := false
	w.SetUpdateCallback(func() { called = true })
	w.ProcessMessages()
	assert.False(t, called)
}
