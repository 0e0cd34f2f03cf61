package navigator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate indicates a latitude outside [-90, 90] or a longitude
// outside [-180, 180].
var ErrInvalidCoordinate = errors.New("navigator: invalid coordinate")

// earthRadius is the mean Earth radius in meters.
const earthRadius = 6371000.0

// Location is a named point on the map.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func validateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, lat, lon)
	}

	return nil
}

func degreeToRad(deg float64) float64 { return deg * math.Pi / 180 }

// GreatCircleDistance returns the haversine distance between a and b in meters.
func GreatCircleDistance(a, b Location) float64 {
	lat1, lat2 := degreeToRad(a.Latitude), degreeToRad(b.Latitude)
	dLat := lat2 - lat1
	dLon := degreeToRad(b.Longitude - a.Longitude)

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(s)))
}
