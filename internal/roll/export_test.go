package roll

import "dicebox/internal/geometry"

// SetColliderBuilder swaps the hull builder so tests can force the sphere fallback.
func SetColliderBuilder(f *Factory, fn func(geometry.Polyhedron) (geometry.Collider, error)) {
	f.collider = fn
}
