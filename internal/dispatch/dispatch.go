// Package dispatch chooses, once per session, whether the app talks to the
// remote backend or to the local demo fixture. The old design re-read the
// demo flag inside every operation; here the choice happens a single time
// and the selected bundle is handed to the flows.
package dispatch

import (
	"fmt"

	"github.com/vats147/Inventory-mobile-app/internal/backend"
)

// ModeSource reports whether demo mode is on. The session store satisfies
// this.
type ModeSource interface {
	DemoMode() (bool, error)
}

// Select returns the demo bundle when the demo flag is set, the live bundle
// otherwise. When the flag is set the returned bundle never touches the
// network.
func Select(mode ModeSource, demo, live backend.Backend) (backend.Backend, error) {
	on, err := mode.DemoMode()
	if err != nil {
		return backend.Backend{}, fmt.Errorf("read demo mode: %w", err)
	}

	if on {
		return demo, nil
	}
	return live, nil
}
