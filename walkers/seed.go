package walkers

import (
	"time"

	"github.com/WaggleHQ/waggle/geo"
	"github.com/WaggleHQ/waggle/utils"
)

// Seed fills the registry with the demo roster: the local walker plus three
// neighbors around central Seoul.
func Seed(r *Registry) {
	r.Add(WalkerInfo{
		ID:       SelfID,
		Name:     "Me",
		DogName:  "My dog",
		DogBreed: "Mixed",
		Status:   "Getting ready for a walk...",
		Location: geo.SeoulCenter,
		Online:   true,
		LastSeen: utils.PointerNow(),
	})
	r.Add(WalkerInfo{
		ID:       "1",
		Name:     "Minsu Kim",
		DogName:  "Kong",
		DogBreed: "Golden Retriever",
		Status:   "At Namsan Park right now!",
		Location: geo.Point{Lat: 37.5665, Lng: 126.9780}, // Myeongdong
		Online:   true,
		Favorite: true,
		LastSeen: utils.PointerNow(),
	})
	r.Add(WalkerInfo{
		ID:       "2",
		Name:     "Yongnam Bae",
		DogName:  "Latte",
		DogBreed: "Shiba Inu",
		Status:   "Heading to Han River Park at 7",
		Location: geo.Point{Lat: 37.5658, Lng: 126.9775}, // near Myeongdong
		Online:   false,
		LastSeen: pointerAgo(30 * time.Minute),
	})
	r.Add(WalkerInfo{
		ID:       "3",
		Name:     "Jaehyuk Jung",
		DogName:  "Som",
		DogBreed: "Poodle",
		Status:   "Walking somewhere quiet...",
		Location: geo.Point{Lat: 37.5672, Lng: 126.9785}, // Euljiro
		Online:   true,
		Favorite: true,
		LastSeen: utils.PointerNow(),
	})
}

func pointerAgo(d time.Duration) *time.Time {
	t := time.Now().Add(-d)
	return &t
}
