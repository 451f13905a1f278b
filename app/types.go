package app

import (
	"github.com/WaggleHQ/waggle/favorites"
	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/walkers"
)

// Waggle owns every registry. All operations go through this context object;
// there is no ambient state.
type Waggle struct {
	WalkerRegistry          *walkers.Registry
	FavoriteRequestRegistry *favorites.Registry
	Frame                   geo.Frame
}

// New wires up a Waggle instance with a seeded roster and an empty
// request queue.
func New() *Waggle {
	roster := walkers.NewRegistry()
	walkers.Seed(roster)
	return &Waggle{
		WalkerRegistry:          roster,
		FavoriteRequestRegistry: favorites.NewRegistry(roster),
		Frame:                   geo.DefaultFrame(),
	}
}
