package swordforge

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type styleFile struct {
	Styles []StyleSpec `toml:"style"`
}

// LoadStyles reads extra sword styles from a TOML file. Each [[style]]
// table mirrors StyleSpec; components give either literal verts/faces or a
// blade table. Validation happens here so a bad file fails before any
// geometry is built.
func LoadStyles(path string) ([]StyleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading styles: %w", err)
	}

	var f styleFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing styles %s: %w", path, err)
	}

	for si, st := range f.Styles {
		if st.Name == "" {
			return nil, fmt.Errorf("styles %s: style %d has no name", path, si)
		}
		if len(st.Components) == 0 {
			return nil, fmt.Errorf("styles %s: style %s has no components", path, st.Name)
		}
		for _, cs := range st.Components {
			if cs.Name == "" {
				return nil, fmt.Errorf("styles %s: style %s has an unnamed component", path, st.Name)
			}
			if cs.Blade == nil {
				continue
			}
			switch cs.Blade.Kind {
			case CurveKatana, CurveArc, CurveParabola:
			default:
				return nil, fmt.Errorf("styles %s: style %s component %s: unknown curve kind %q",
					path, st.Name, cs.Name, cs.Blade.Kind)
			}
		}
	}
	return f.Styles, nil
}
