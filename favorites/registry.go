package favorites

import (
	"log"
	"sync"
	"time"

	"github.com/WaggleHQ/waggle/walkers"
	"github.com/google/uuid"
)

// Registry owns the queue of pending favorite requests. It validates against
// the walker roster and flips favorite flags on acceptance; the queue itself
// is append-ordered so requests display in arrival order. Requests live
// until resolved, there is no expiry.
type Registry struct {
	mu sync.Mutex
	// arrival order
	pending []FavoriteRequest
	walkers *walkers.Registry
}

// NewRegistry creates a new Registry instance backed by the given roster
func NewRegistry(roster *walkers.Registry) *Registry {
	return &Registry{walkers: roster}
}

// Create proposes a favorite request from one walker to another. The second
// return value is an ERR_* code, empty on success. Preconditions run in a
// fixed order and the first match wins.
func (r *Registry) Create(fromID string, toID string) (*FavoriteRequest, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	to, ok := r.walkers.Get(toID)
	if !ok {
		log.Printf("Favorite request to unknown walker: %s", toID)
		return nil, ErrNotFound
	}
	if fromID == toID {
		log.Printf("Walker %s attempted a favorite request to themselves", fromID)
		return nil, ErrSelfRequest
	}
	if to.Favorite {
		log.Printf("Walker %s is already a favorite, not requesting again", toID)
		return nil, ErrAlreadyFavorite
	}
	if r.containsPairInternal(fromID, toID) {
		log.Printf("Favorite request registry already contains %s -> %s", fromID, toID)
		return nil, ErrAlreadyRequested
	}

	req := FavoriteRequest{
		ID:        uuid.Must(uuid.NewV7()),
		FromID:    fromID,
		ToID:      toID,
		CreatedAt: time.Now(),
	}
	r.pending = append(r.pending, req)

	log.Printf("Favorite request registry adding %v", req.ID)
	return &req, ""
}

// Accept resolves the request with the specified ID: the request leaves the
// queue and the requested walker becomes a favorite. Only that one record's
// flag changes, the other side of the edge is never asserted. Check-and-remove
// happens under one lock, so a second accept of the same id always fails.
func (r *Registry) Accept(id uuid.UUID) (bool, FavoriteRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		log.Printf("Attempted to accept invalid request: %+v", id)
		return false, FavoriteRequest{}
	}

	req := r.pending[i]
	r.pending = append(r.pending[:i], r.pending[i+1:]...)
	r.walkers.SetFavorite(req.ToID, true)

	log.Printf("Accepted request: %+v", id)
	return true, req
}

// Decline Functionally the same as Accept, but the roster stays untouched.
func (r *Registry) Decline(id uuid.UUID) (bool, FavoriteRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		log.Printf("Attempted to decline invalid request: %+v", id)
		return false, FavoriteRequest{}
	}

	req := r.pending[i]
	r.pending = append(r.pending[:i], r.pending[i+1:]...)

	log.Printf("Declined request: %+v", id)
	return true, req
}

// RemoveFavorite revokes a walker's favorite flag. Independent of the queue;
// the walker can be re-requested later. Returns false on unknown id.
func (r *Registry) RemoveFavorite(walkerID string) bool {
	return r.walkers.SetFavorite(walkerID, false)
}

// Pending returns all pending requests in arrival order.
func (r *Registry) Pending() []FavoriteRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FavoriteRequest, len(r.pending))
	copy(out, r.pending)
	return out
}

// PendingCount returns the queue length.
func (r *Registry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// ContainsPair reports whether a request from fromID to toID is pending.
func (r *Registry) ContainsPair(fromID string, toID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.containsPairInternal(fromID, toID)
}

func (r *Registry) containsPairInternal(fromID string, toID string) bool {
	for _, req := range r.pending {
		if req.FromID == fromID && req.ToID == toID {
			return true
		}
	}
	return false
}

func (r *Registry) indexOf(id uuid.UUID) (int, bool) {
	for i, req := range r.pending {
		if req.ID == id {
			return i, true
		}
	}
	return 0, false
}
