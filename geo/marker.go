package geo

// Marker is the visual encoding of one walker on the map panel.
type Marker struct {
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	FavoriteBadge bool   `json:"favorite_badge"`
}

// Icon variants and color tiers the rendering surface knows about.
const (
	IconHome = "home"
	IconDog  = "dog"

	ColorSelf     = "orange"
	ColorActive   = "green"
	ColorInactive = "gray"
)

// MarkerFor derives the marker encoding from ownership, presence and
// favorite state. Position plays no part here.
func MarkerFor(isSelf bool, online bool, favorite bool) Marker {
	m := Marker{Icon: IconDog, Color: ColorInactive, FavoriteBadge: favorite}
	if online {
		m.Color = ColorActive
	}
	if isSelf {
		m.Icon = IconHome
		m.Color = ColorSelf
	}
	return m
}
