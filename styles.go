package swordforge

// ComponentSpec describes one part of a sword either as literal vertex and
// face data or as a parametric blade. Exactly one of Verts/Faces or Blade
// should be set.
type ComponentSpec struct {
	Name  string     `toml:"name"`
	Color [3]uint8   `toml:"color"`
	Verts []Vertex   `toml:"verts"`
	Faces []Face     `toml:"faces"`
	Blade *BladeSpec `toml:"blade"`
}

// StyleSpec is one sword style: a final entity name plus 2-5 component
// specs. Styles are pure data; the builder turns them into geometry.
type StyleSpec struct {
	Name       string          `toml:"name"`
	Components []ComponentSpec `toml:"components"`
}

// Part colors shared across the catalog.
var (
	colSteel    = [3]uint8{188, 194, 205}
	colDarkIron = [3]uint8{118, 122, 132}
	colBronze   = [3]uint8{166, 124, 54}
	colLeather  = [3]uint8{94, 62, 40}
	colWood     = [3]uint8{124, 86, 48}
)

// Catalog returns the ten built-in sword styles in their display order.
// All literal coordinates are in blade-local space: X lateral, Y along the
// blade, Z thickness.
func Catalog() []StyleSpec {
	return []StyleSpec{
		{
			// Short, broad Roman stabbing sword.
			Name: "Roman_Gladius",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.08, 0, 0}, {-0.08, 0, 0}, {-0.08, 0.8, 0}, {0.08, 0.8, 0}, {0, 1.0, 0}},
					Faces: []Face{{0, 1, 2, 3}, {2, 4, 3}}},
				{Name: "Guard", Color: colBronze,
					Verts: []Vertex{{-0.2, 0, 0.05}, {0.2, 0, 0.05}, {0.2, 0, -0.05}, {-0.2, 0, -0.05}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colWood,
					Verts: []Vertex{{-0.06, -0.05, 0}, {0.06, -0.05, 0}, {0.06, -0.5, 0}, {-0.06, -0.5, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colBronze,
					Verts: []Vertex{{-0.1, -0.5, 0}, {0.1, -0.5, 0}, {0, -0.65, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
		{
			// Classic tapering Viking sword.
			Name: "Viking_Sword",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.07, 0, 0}, {-0.07, 0, 0}, {-0.02, 1.2, 0}, {0.02, 1.2, 0}, {0, 1.25, 0}},
					Faces: []Face{{0, 1, 2, 3}, {2, 4, 3}}},
				{Name: "Guard", Color: colDarkIron,
					Verts: []Vertex{{-0.25, 0.05, 0}, {0.25, 0.05, 0}, {0.2, -0.1, 0}, {-0.2, -0.1, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.05, -0.1, 0}, {0.05, -0.1, 0}, {0.05, -0.6, 0}, {-0.05, -0.6, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colDarkIron,
					Verts: []Vertex{{-0.15, -0.6, 0}, {0.15, -0.6, 0}, {0.1, -0.75, 0}, {-0.1, -0.75, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
			},
		},
		{
			// Curved Japanese katana; the blade is fully parametric.
			Name: "Japanese_Katana",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Blade: &BladeSpec{
						Kind: CurveKatana, Samples: 11,
						Step: 0.12, Bow: -0.2, Edge: 0.05, Taper: 0.5, Width: 0.1,
						Tip: &Vertex{-0.2, 1.25, 0},
					}},
				{Name: "Guard", Color: colBronze,
					Verts: []Vertex{{-0.1, 0, 0.05}, {0.1, 0, 0.05}, {0.1, 0, -0.05}, {-0.1, 0, -0.05}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.06, -0.05, 0}, {0.06, -0.05, 0}, {0.06, -0.4, 0}, {-0.06, -0.4, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
			},
		},
		{
			// Sickle-shaped Egyptian khopesh swept along a polar arc.
			Name: "Egyptian_Khopesh",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colBronze,
					Blade: &BladeSpec{
						Kind: CurveArc, Samples: 12,
						AngleStart: 0.5, AngleSpan: 2.5,
						Radius: 0.5, RadiusGrow: 0.3,
						YShift: 0.3, HalfThick: 0.05,
					}},
				{Name: "Hilt", Color: colWood,
					Verts: []Vertex{{-0.06, 0.2, 0}, {0.06, 0.2, 0}, {0.06, -0.3, 0}, {-0.06, -0.3, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
			},
		},
		{
			// Curved Persian scimitar on a parabolic rise.
			Name: "Persian_Scimitar",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Blade: &BladeSpec{
						Kind: CurveParabola, Samples: 12,
						Step: 1.2 / 11, Coeff: 0.2,
						Width: 0.08, WidthDecay: 1.0 / 22,
						Tip: &Vertex{1.25, 1.2*1.2*0.2 + 0.05, 0},
					}},
				{Name: "Guard", Color: colBronze,
					Verts: []Vertex{{-0.15, 0.05, 0.05}, {0.15, -0.05, 0.05}, {0.15, -0.05, -0.05}, {-0.15, 0.05, -0.05}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.05, 0, 0}, {0.05, 0, 0}, {0.0, -0.4, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
		{
			// Scottish claymore with the wide sloped guard.
			Name: "Scottish_Claymore",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.06, 0, 0}, {-0.06, 0, 0}, {-0.04, 1.5, 0}, {0.04, 1.5, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Guard", Color: colDarkIron,
					Verts: []Vertex{{-0.4, 0.1, 0}, {0.4, 0.1, 0}, {0.3, -0.1, 0}, {-0.3, -0.1, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.05, -0.1, 0}, {0.05, -0.1, 0}, {0.05, -0.7, 0}, {-0.05, -0.7, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colDarkIron,
					Verts: []Vertex{{-0.1, -0.7, 0}, {0.1, -0.7, 0}, {0, -0.8, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
		{
			// European longsword.
			Name: "European_Longsword",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.07, 0, 0}, {-0.07, 0, 0}, {-0.01, 1.3, 0}, {0.01, 1.3, 0}, {0, 1.35, 0}},
					Faces: []Face{{0, 1, 2, 3}, {2, 4, 3}}},
				{Name: "Guard", Color: colDarkIron,
					Verts: []Vertex{{-0.3, 0.05, 0}, {0.3, 0.05, 0}, {0.3, -0.05, 0}, {-0.3, -0.05, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.05, -0.05, 0}, {0.05, -0.05, 0}, {0.05, -0.6, 0}, {-0.05, -0.6, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colDarkIron,
					Verts: []Vertex{{-0.1, -0.6, 0}, {0.1, -0.6, 0}, {0, -0.7, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
		{
			// Chinese dao, a gentler parabola than the scimitar.
			Name: "Chinese_Dao",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Blade: &BladeSpec{
						Kind: CurveParabola, Samples: 10,
						Step: 0.12, Coeff: 0.15,
						Width: 0.09, WidthDecay: 1.0 / 20,
						Tip: &Vertex{1.2, 1.1*1.1*0.15 + 0.05, 0},
					}},
				{Name: "Guard", Color: colBronze,
					Verts: []Vertex{{-0.08, -0.02, 0.05}, {0.08, -0.02, 0.05}, {0.08, -0.02, -0.05}, {-0.08, -0.02, -0.05}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colWood,
					Verts: []Vertex{{-0.06, -0.02, 0}, {0.06, -0.02, 0}, {0.04, -0.3, 0}, {-0.04, -0.3, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
			},
		},
		{
			// Indian khanda with its pommel spike.
			Name: "Indian_Khanda",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.1, 0, 0}, {-0.1, 0, 0}, {-0.1, 1.1, 0}, {0.1, 1.1, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Guard", Color: colBronze,
					Verts: []Vertex{{-0.2, 0, 0}, {0.2, 0, 0}, {0.2, -0.1, 0}, {-0.2, -0.1, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.06, -0.1, 0}, {0.06, -0.1, 0}, {0.06, -0.5, 0}, {-0.06, -0.5, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colBronze,
					Verts: []Vertex{{-0.1, -0.5, 0}, {0.1, -0.5, 0}, {0.1, -0.6, 0}, {-0.1, -0.6, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel_Spike", Color: colSteel,
					Verts: []Vertex{{0.02, -0.6, 0}, {-0.02, -0.6, 0}, {0, -0.8, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
		{
			// German zweihander with parry hooks above the guard.
			Name: "German_Zweihander",
			Components: []ComponentSpec{
				{Name: "Blade", Color: colSteel,
					Verts: []Vertex{{0.07, 0, 0}, {-0.07, 0, 0}, {-0.05, 1.7, 0}, {0.05, 1.7, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Parry_Hooks", Color: colDarkIron,
					Verts: []Vertex{{-0.2, 0.4, 0}, {0.2, 0.4, 0}, {0.15, 0.3, 0}, {-0.15, 0.3, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Guard", Color: colDarkIron,
					Verts: []Vertex{{-0.4, 0.05, 0}, {0.4, 0.05, 0}, {0.4, -0.05, 0}, {-0.4, -0.05, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Hilt", Color: colLeather,
					Verts: []Vertex{{-0.05, -0.05, 0}, {0.05, -0.05, 0}, {0.05, -0.8, 0}, {-0.05, -0.8, 0}},
					Faces: []Face{{0, 1, 2, 3}}},
				{Name: "Pommel", Color: colDarkIron,
					Verts: []Vertex{{-0.1, -0.8, 0}, {0.1, -0.8, 0}, {0, -0.9, 0}},
					Faces: []Face{{0, 1, 2}}},
			},
		},
	}
}
