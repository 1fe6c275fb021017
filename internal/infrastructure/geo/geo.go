// Package geo provides great-circle distance and bounding box calculations
// for latitude/longitude coordinates.
package geo

import "math"

// EarthRadiusMiles is the mean radius of the Earth in miles.
const EarthRadiusMiles = 3958.8

// Point represents a geographic coordinate (WGS 84).
type Point struct {
	// Lat is the latitude in decimal degrees (-90 to 90)
	Lat float64 `json:"lat"`

	// Lng is the longitude in decimal degrees (-180 to 180)
	Lng float64 `json:"lng"`
}

// Bounds represents a rectangular geographic envelope.
// Used as a cheap pre-filter before exact distance checks.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether the point lies inside the bounds (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Distance returns the great-circle distance in miles between two points
// using the Haversine formula:
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
//
// where φ is latitude, λ is longitude and R is the Earth's radius.
// Distance is symmetric and Distance(p, p) is zero within floating-point
// tolerance.
func Distance(p1, p2 Point) float64 {
	lat1 := radians(p1.Lat)
	lat2 := radians(p2.Lat)
	dLat := radians(p2.Lat - p1.Lat)
	dLng := radians(p2.Lng - p1.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// WithinRadius reports whether p is within radiusMiles of center.
// The boundary is inclusive: a point at exactly radiusMiles counts.
func WithinRadius(p, center Point, radiusMiles float64) bool {
	return Distance(p, center) <= radiusMiles
}

// BoundingBoxes returns one or two rectangular envelopes whose union is
// guaranteed to contain every point within radiusMiles of center. Two boxes
// come back when the envelope crosses the antimeridian; clamping there would
// silently exclude near neighbors on the far side of the dateline. The boxes
// are not tight, so every candidate inside them must still be verified with
// Distance.
func BoundingBoxes(center Point, radiusMiles float64) []Bounds {
	angular := radiusMiles / EarthRadiusMiles
	latDelta := degrees(angular)

	minLat := center.Lat - latDelta
	maxLat := center.Lat + latDelta
	if minLat < -90 {
		minLat = -90
	}
	if maxLat > 90 {
		maxLat = 90
	}

	// A circle that reaches a pole, or whose angular radius exceeds a
	// quarter of the sphere, touches every meridian.
	if angular >= math.Pi/2 || center.Lat-latDelta <= -90 || center.Lat+latDelta >= 90 {
		return []Bounds{{MinLat: minLat, MaxLat: maxLat, MinLng: -180, MaxLng: 180}}
	}

	// The circle's widest longitude deviation sits poleward of the center:
	// delta = asin(sin(d) / cos(lat)) for angular radius d. The plain
	// d/cos(lat) form undershoots it at high latitudes.
	sinRatio := math.Sin(angular) / math.Cos(radians(center.Lat))
	if sinRatio >= 1 {
		return []Bounds{{MinLat: minLat, MaxLat: maxLat, MinLng: -180, MaxLng: 180}}
	}
	lngDelta := degrees(math.Asin(sinRatio))

	minLng := center.Lng - lngDelta
	maxLng := center.Lng + lngDelta

	switch {
	case minLng < -180:
		return []Bounds{
			{MinLat: minLat, MaxLat: maxLat, MinLng: -180, MaxLng: maxLng},
			{MinLat: minLat, MaxLat: maxLat, MinLng: minLng + 360, MaxLng: 180},
		}
	case maxLng > 180:
		return []Bounds{
			{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: 180},
			{MinLat: minLat, MaxLat: maxLat, MinLng: -180, MaxLng: maxLng - 360},
		}
	default:
		return []Bounds{{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}}
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
