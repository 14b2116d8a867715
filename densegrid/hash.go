package densegrid

import "tailscale.com/util/deephash"

// Hash returns a digest of g's bounds and cells. Grids that are Equal hash
// the same, which makes Hash usable as a map key for cycle detection in
// repeated simulations.
func (g *Grid[V]) Hash() deephash.Sum {
	return deephash.Hash(g)
}
