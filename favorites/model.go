package favorites

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteRequest An object representing a pending favorite request. IDs are
// UUIDv7, so they sort by creation order.
type FavoriteRequest struct {
	ID        uuid.UUID `json:"id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Outcome codes for Create. Empty means the request was created.
const (
	ErrNotFound         = "ERR_NOT_FOUND"
	ErrSelfRequest      = "ERR_SELF_REQUEST"
	ErrAlreadyFavorite  = "ERR_ALREADY_FAVORITE"
	ErrAlreadyRequested = "ERR_ALREADY_REQUESTED"
)

// FavoriteRequestPacket The json "packet" asking to create a request
type FavoriteRequestPacket struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

// FavoriteResponsePacket The json "packet" sent on declination or acceptance
type FavoriteResponsePacket struct {
	ID uuid.UUID `json:"request_id"`
}

// RemoveFavoritePacket The json "packet" revoking an existing favorite
type RemoveFavoritePacket struct {
	WalkerID string `json:"walker_id"`
}

// GenericResponsePacket is the reply shape for every favorites command.
type GenericResponsePacket struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
