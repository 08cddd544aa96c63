package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

const (
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude float64 = 180
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude float64 = 90

	// EarthRadiusKm is the mean Earth radius used for great-circle distance.
	EarthRadiusKm float64 = 6371
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint or a
// BoundingBox so coordinates are always validated.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or BoundingBox.RandomPoint")

// GeoPoint is an immutable value object representing a geographic position
// in degrees. Longitude comes first throughout the system, matching the
// GeoJSON coordinate order used on the wire.
//
// The zero value is invalid and fails Validate; use the constructors.
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint(76.3647, 30.3562)
//	if err != nil {
//	    // out-of-range or non-finite coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from longitude and latitude in degrees.
// Both values must be finite and within [-180,180] and [-90,90]
// respectively; otherwise a ValueIsOutOfRangeError is returned.
func NewGeoPoint(lon float64, lat float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLon(lon), p.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// String implements fmt.Stringer as "GeoPoint(lon,lat)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lon, p.lat)
}

// IsEqual reports whether two points have identical coordinates.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// DistanceTo returns the great-circle distance to other in kilometers,
// computed with the Haversine formula over a sphere of EarthRadiusKm.
// The result is non-negative, symmetric, and zero iff the points are equal.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - p.lat)
	dLon := toRadians(other.lon - p.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(p.lat))*math.Cos(toRadians(other.lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// setLon sets the longitude with validation.
// Pointer receiver on a value-object setter keeps validation self-encapsulated
// during construction, mirroring the rest of the domain model.
func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, MinLongitude, MaxLongitude)
	}

	p.lon = lon
	return nil
}

// setLat sets the latitude with validation.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ErrBoundingBoxIsNotConstructed is returned when using an improperly
// initialized BoundingBox.
var ErrBoundingBoxIsNotConstructed = errs.NewValueIsRequiredError(
	"bounding box must be created via NewBoundingBox")

// BoundingBox is a rectangular geographic area used as the service area:
// new delivery associates spawn inside it and simulated movement is
// clamped to it.
type BoundingBox struct {
	southWest GeoPoint
	northEast GeoPoint
	guard     guard.ConstructorGuard
}

// NewBoundingBox creates a BoundingBox from its south-west and north-east
// corners. Both corners must be valid and the south-west corner must not
// exceed the north-east one on either axis.
func NewBoundingBox(southWest GeoPoint, northEast GeoPoint) (BoundingBox, error) {
	if err := errors.Join(southWest.Validate(), northEast.Validate()); err != nil {
		return BoundingBox{}, err
	}

	if southWest.lon > northEast.lon || southWest.lat > northEast.lat {
		return BoundingBox{}, errs.NewValueIsInvalidError("bounding box corners")
	}

	return BoundingBox{
		southWest: southWest,
		northEast: northEast,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the BoundingBox was created through NewBoundingBox.
func (b BoundingBox) Validate() error {
	return b.guard.Validate(ErrBoundingBoxIsNotConstructed)
}

// SouthWest returns the south-west corner.
func (b BoundingBox) SouthWest() GeoPoint {
	return b.southWest
}

// NorthEast returns the north-east corner.
func (b BoundingBox) NorthEast() GeoPoint {
	return b.northEast
}

// RandomPoint returns a uniformly distributed point inside the box.
func (b BoundingBox) RandomPoint() (GeoPoint, error) {
	if err := b.Validate(); err != nil {
		return GeoPoint{}, err
	}

	lon := b.southWest.lon + rand.Float64()*(b.northEast.lon-b.southWest.lon)
	lat := b.southWest.lat + rand.Float64()*(b.northEast.lat-b.southWest.lat)
	return NewGeoPoint(lon, lat)
}

// Clamp returns the point inside the box closest to p.
func (b BoundingBox) Clamp(p GeoPoint) (GeoPoint, error) {
	if err := errors.Join(b.Validate(), p.Validate()); err != nil {
		return GeoPoint{}, err
	}

	lon := math.Min(math.Max(p.lon, b.southWest.lon), b.northEast.lon)
	lat := math.Min(math.Max(p.lat, b.southWest.lat), b.northEast.lat)
	return NewGeoPoint(lon, lat)
}
