package walkers

import (
	"encoding/json"
	"time"

	"github.com/WaggleHQ/waggle/geo"
)

// SelfID is the reserved identifier of the local walker.
const SelfID = "me"

// WalkerInfo represents one walker and their dog
type WalkerInfo struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	DogName  string     `json:"dog_name"`
	DogBreed string     `json:"dog_breed"`
	Status   string     `json:"status"`
	Location geo.Point  `json:"location"`
	Online   bool       `json:"online"`
	Favorite bool       `json:"favorite"`
	LastSeen *time.Time `json:"last_seen"` // pointer indicates the value may be null.
}

func (w WalkerInfo) MarshalJSON() ([]byte, error) {
	type Alias WalkerInfo
	return json.Marshal(&struct {
		LastSeen interface{} `json:"last_seen"`
		*Alias
	}{
		LastSeen: func() interface{} {
			if w.LastSeen == nil {
				return nil
			}
			return w.LastSeen.UTC().Format(time.RFC3339)
		}(),
		Alias: (*Alias)(&w),
	})
}

// ProfileUpdate carries the editable profile fields. Location and Online are
// deliberately absent so a profile edit can never clobber them.
type ProfileUpdate struct {
	Name     string `json:"name"`
	DogName  string `json:"dog_name"`
	DogBreed string `json:"dog_breed"`
	Status   string `json:"status"`
}
