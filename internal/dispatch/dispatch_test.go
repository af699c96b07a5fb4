package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/dispatch"
)

type modeFunc func() (bool, error)

func (f modeFunc) DemoMode() (bool, error) { return f() }

type marker struct{ backend.Auth }

func TestSelect(t *testing.T) {
	demoAuth := &marker{}
	liveAuth := &marker{}
	demoBundle := backend.Backend{Auth: demoAuth}
	liveBundle := backend.Backend{Auth: liveAuth}

	t.Run("Should pick the demo bundle when the flag is set", func(t *testing.T) {
		selected, err := dispatch.Select(modeFunc(func() (bool, error) { return true, nil }), demoBundle, liveBundle)
		require.NoError(t, err)
		assert.Same(t, demoAuth, selected.Auth)
	})

	t.Run("Should pick the live bundle otherwise", func(t *testing.T) {
		selected, err := dispatch.Select(modeFunc(func() (bool, error) { return false, nil }), demoBundle, liveBundle)
		require.NoError(t, err)
		assert.Same(t, liveAuth, selected.Auth)
	})

	t.Run("Should surface a store read failure", func(t *testing.T) {
		readErr := errors.New("db closed")
		_, err := dispatch.Select(modeFunc(func() (bool, error) { return false, readErr }), demoBundle, liveBundle)
		assert.ErrorIs(t, err, readErr)
	})
}
