package walkers

import (
	"log"
	"sync"

	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/utils"
)

// Registry is the roster: the single source of truth for every known walker.
// The population is fixed after seeding; only attributes mutate.
type Registry struct {
	mu      sync.Mutex
	walkers map[string]WalkerInfo
	// insertion order of ids, so list snapshots are stable
	order []string
}

// NewRegistry creates a new Registry instance
func NewRegistry() *Registry {
	return &Registry{walkers: make(map[string]WalkerInfo)}
}

// Add registers a walker. Seeding only; re-adding an id replaces the record
// without duplicating its order slot.
func (r *Registry) Add(info WalkerInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.walkers[info.ID]; !exists {
		r.order = append(r.order, info.ID)
	}
	r.walkers[info.ID] = info
	log.Printf("Registered walker: %+v", info)
}

// Get looks up a walker by id.
func (r *Registry) Get(id string) (WalkerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	return info, ok
}

// SetFavorite sets the favorite flag unconditionally. Returns false when the
// id is unknown.
func (r *Registry) SetFavorite(id string, favorite bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	if !ok {
		log.Printf("SetFavorite on unknown walker: %s", id)
		return false
	}
	info.Favorite = favorite
	r.walkers[id] = info
	return true
}

// UpdateStatus replaces a walker's status message verbatim.
func (r *Registry) UpdateStatus(id string, status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	if !ok {
		log.Printf("UpdateStatus on unknown walker: %s", id)
		return false
	}
	info.Status = status
	r.walkers[id] = info
	return true
}

// UpdateLocation replaces a walker's coordinate. Any finite lat/lng is
// accepted; the projector clamps at render time.
func (r *Registry) UpdateLocation(id string, loc geo.Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	if !ok {
		log.Printf("UpdateLocation on unknown walker: %s", id)
		return false
	}
	info.Location = loc
	r.walkers[id] = info
	return true
}

// UpdateProfile applies the editable profile fields. Location and Online
// stay untouched by construction.
func (r *Registry) UpdateProfile(id string, update ProfileUpdate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	if !ok {
		log.Printf("UpdateProfile on unknown walker: %s", id)
		return false
	}
	info.Name = update.Name
	info.DogName = update.DogName
	info.DogBreed = update.DogBreed
	info.Status = update.Status
	r.walkers[id] = info
	log.Printf("Updated profile for walker %s: %+v", id, update)
	return true
}

// SetOnline flips the presence flag and advances LastSeen. Presence updates
// are the only writer of LastSeen.
func (r *Registry) SetOnline(id string, online bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.walkers[id]
	if !ok {
		log.Printf("SetOnline on unknown walker: %s", id)
		return false
	}
	info.Online = online
	info.LastSeen = utils.PointerNow()
	r.walkers[id] = info
	return true
}

// All returns every walker in insertion order.
func (r *Registry) All() []WalkerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(func(WalkerInfo) bool { return true })
}

// Favorites returns the walkers currently flagged as favorites, in
// insertion order.
func (r *Registry) Favorites() []WalkerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(func(w WalkerInfo) bool { return w.Favorite })
}

// Online returns the walkers currently online, in insertion order.
func (r *Registry) Online() []WalkerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(func(w WalkerInfo) bool { return w.Online })
}

func (r *Registry) snapshot(keep func(WalkerInfo) bool) []WalkerInfo {
	out := make([]WalkerInfo, 0, len(r.order))
	for _, id := range r.order {
		if info := r.walkers[id]; keep(info) {
			out = append(out, info)
		}
	}
	return out
}

// Size returns the roster population.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.walkers)
}

// OnlineCount returns how many walkers are online.
func (r *Registry) OnlineCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, info := range r.walkers {
		if info.Online {
			n++
		}
	}
	return n
}

// FavoriteCount returns how many walkers are flagged as favorites.
func (r *Registry) FavoriteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, info := range r.walkers {
		if info.Favorite {
			n++
		}
	}
	return n
}
