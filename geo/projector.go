package geo

import "math"

// Point is a real-world coordinate (WGS84 degrees).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Frame is the reference frame markers are projected against: the panel is
// centered on Center, and Span degrees of longitude/latitude map onto the
// full usable width of the panel.
type Frame struct {
	Center Point   `json:"center"`
	Span   float64 `json:"span"`
}

// Position is a projected screen position, in percent of the panel.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const (
	// Scale converts a full-span offset into percent of the panel.
	Scale = 40.0
	// ClampMin and ClampMax bound projected positions so markers never land
	// outside the visible panel, no matter how far away the walker is.
	ClampMin = 10.0
	ClampMax = 90.0
	// DefaultSpan is the degree range the default panel covers.
	DefaultSpan = 0.1
)

// SeoulCenter is the default reference center (Myeongdong, Seoul).
var SeoulCenter = Point{Lat: 37.5665, Lng: 126.9780}

// DefaultFrame returns the reference frame used by the demo deployment.
func DefaultFrame() Frame {
	return Frame{Center: SeoulCenter, Span: DefaultSpan}
}

// Project maps a coordinate into the frame's panel. The y axis is inverted
// because screen y grows downward while latitude grows northward.
func Project(p Point, frame Frame) Position {
	x := 50 + ((p.Lng-frame.Center.Lng)/frame.Span)*Scale
	y := 50 - ((p.Lat-frame.Center.Lat)/frame.Span)*Scale
	return Position{X: clamp(x), Y: clamp(y)}
}

func clamp(v float64) float64 {
	return math.Max(ClampMin, math.Min(ClampMax, v))
}
