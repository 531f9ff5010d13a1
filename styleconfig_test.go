package swordforge

import (
	"os"
	"path/filepath"
	"testing"
)

const validStylesTOML = `
[[style]]
name = "Test_Shortsword"

[[style.components]]
name = "Blade"
color = [188, 194, 205]
verts = [[0.05, 0.0, 0.0], [-0.05, 0.0, 0.0], [0.0, 0.6, 0.0]]
faces = [[0, 1, 2]]

[[style.components]]
name = "Hilt"
color = [94, 62, 40]
verts = [[-0.04, 0.0, 0.0], [0.04, 0.0, 0.0], [0.04, -0.3, 0.0], [-0.04, -0.3, 0.0]]
faces = [[0, 1, 2, 3]]

[[style]]
name = "Test_Saber"

[[style.components]]
name = "Blade"
color = [188, 194, 205]

[style.components.blade]
kind = "parabola"
samples = 8
step = 0.15
coeff = 0.1
width = 0.07
width_decay = 0.05
`

func writeStyles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStyles(t *testing.T) {
	styles, err := LoadStyles(writeStyles(t, validStylesTOML))
	if err != nil {
		t.Fatal(err)
	}
	if len(styles) != 2 {
		t.Fatalf("got %d styles, want 2", len(styles))
	}

	short := styles[0]
	if short.Name != "Test_Shortsword" || len(short.Components) != 2 {
		t.Errorf("first style = %q with %d components", short.Name, len(short.Components))
	}
	if short.Components[0].Color != [3]uint8{188, 194, 205} {
		t.Errorf("blade color = %v", short.Components[0].Color)
	}

	saber := styles[1]
	blade := saber.Components[0].Blade
	if blade == nil {
		t.Fatal("saber blade spec missing")
	}
	if blade.Kind != CurveParabola || blade.Samples != 8 {
		t.Errorf("blade spec = %+v", blade)
	}

	// Loaded styles must build like catalog ones.
	for i, st := range styles {
		if _, err := BuildStyle(st, float64(i)*Spacing); err != nil {
			t.Errorf("style %s failed to build: %v", st.Name, err)
		}
	}
}

func TestLoadStylesErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing file is an error", ""},
		{"unparseable", "[[style]\nname ="},
		{"unnamed style", "[[style]]\n[[style.components]]\nname = \"Blade\"\nverts = [[0.0,0.0,0.0]]\n"},
		{"no components", "[[style]]\nname = \"Empty\"\n"},
		{"unnamed component", "[[style]]\nname = \"S\"\n[[style.components]]\nverts = [[0.0,0.0,0.0]]\n"},
		{"bad curve kind", "[[style]]\nname = \"S\"\n[[style.components]]\nname = \"Blade\"\n[style.components.blade]\nkind = \"spiral\"\nsamples = 4\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var path string
			if tc.content == "" {
				path = filepath.Join(t.TempDir(), "missing.toml")
			} else {
				path = writeStyles(t, tc.content)
			}
			if _, err := LoadStyles(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
