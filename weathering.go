package swordforge

import (
	"github.com/aquilax/go-perlin"
)

// Weathering noise parameters. Alpha and beta follow the library's
// recommended smooth-terrain settings; three octaves keep the dents
// low-frequency so faces stay visibly flat.
const (
	weatherAlpha   = 2.0
	weatherBeta    = 2.0
	weatherOctaves = 3
	weatherScale   = 3.0
)

// Weather displaces the sword's vertices along Z by coherent noise,
// simulating nicks and hammer marks. The pass is deterministic for a given
// seed and amount. Normals and edge shading are recomputed afterwards
// since the displacement changes both.
func Weather(sw *Sword, seed int64, amount float64) {
	if sw == nil || amount == 0 {
		return
	}
	p := perlin.NewPerlin(weatherAlpha, weatherBeta, weatherOctaves, seed)

	pts := sw.Mesh.Points()
	for i, v := range pts {
		n := p.Noise2D(v[0]*weatherScale, v[1]*weatherScale)
		pts[i][2] = v[2] + n*amount
	}
	sw.Mesh.rebuildIndex()

	sw.RecomputeNormals()
	sw.RefreshShading()
}
