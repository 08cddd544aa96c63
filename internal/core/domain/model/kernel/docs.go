// Package kernel provides the core domain primitives shared across the
// tracking model:
//
//   - UUID: identifier value object with validation and comparison
//   - GeoPoint: geographic position in degrees with Haversine distance
//   - BoundingBox: rectangular service area for spawning and clamping points
//
// All primitives are immutable value objects that enforce their invariants
// at construction, so the rest of the domain never sees an invalid
// coordinate or identifier.
package kernel
