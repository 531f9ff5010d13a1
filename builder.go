package swordforge

import (
	"fmt"
	"image/color"
)

// BuildStyle turns one style spec into a finished sword placed at the
// given X offset. Any bad component aborts the whole sword; a half-built
// entity is worse than a missing one.
func BuildStyle(spec StyleSpec, offset float64) (*Sword, error) {
	if len(spec.Components) == 0 {
		return nil, fmt.Errorf("style %s: no components", spec.Name)
	}

	comps := make([]*Component, 0, len(spec.Components))
	for _, cs := range spec.Components {
		verts, faces := cs.Verts, cs.Faces
		if cs.Blade != nil {
			var err error
			verts, faces, err = cs.Blade.Build()
			if err != nil {
				return nil, fmt.Errorf("style %s, component %s: %w", spec.Name, cs.Name, err)
			}
		}
		col := color.RGBA{R: cs.Color[0], G: cs.Color[1], B: cs.Color[2], A: 255}
		c, err := NewComponent(cs.Name, verts, faces, col, offset)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", spec.Name, err)
		}
		comps = append(comps, c)
	}

	return Join(spec.Name, comps)
}
