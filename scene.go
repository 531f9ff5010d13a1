package swordforge

import (
	"fmt"
	"log"
)

// Spacing is the X distance between consecutive swords in a lineup.
const Spacing = 2.0

// Scene holds the assembled swords in display order plus a name index for
// lookups. It is the single context object the exporters and viewers work
// from.
type Scene struct {
	swords []*Sword
	byName map[string]*Sword
}

func NewScene() *Scene {
	return &Scene{byName: make(map[string]*Sword)}
}

// Clear removes every sword from the scene.
func (s *Scene) Clear() {
	s.swords = s.swords[:0]
	s.byName = make(map[string]*Sword)
}

// Link adds a finished sword to the scene. Names must be unique; the name
// index is how exports and lookups address entities.
func (s *Scene) Link(sw *Sword) error {
	if sw == nil {
		return fmt.Errorf("scene: nil sword")
	}
	if _, ok := s.byName[sw.Name]; ok {
		return fmt.Errorf("scene: duplicate sword name %s", sw.Name)
	}
	s.swords = append(s.swords, sw)
	s.byName[sw.Name] = sw
	return nil
}

// Swords returns the swords in insertion order.
func (s *Scene) Swords() []*Sword {
	return s.swords
}

// Lookup finds a sword by its entity name.
func (s *Scene) Lookup(name string) (*Sword, bool) {
	sw, ok := s.byName[name]
	return sw, ok
}

// Generate builds every style in order and links the results into the
// scene, each one Spacing further along X. A style that fails to build is
// logged and skipped; one bad style must not take down the lineup. Returns
// how many swords were actually added.
func Generate(scene *Scene, styles []StyleSpec) (int, error) {
	if scene == nil {
		return 0, fmt.Errorf("generate: nil scene")
	}
	added := 0
	for i, spec := range styles {
		sw, err := BuildStyle(spec, float64(i)*Spacing)
		if err != nil {
			log.Printf("skipping style %s: %v", spec.Name, err)
			continue
		}
		if err := scene.Link(sw); err != nil {
			log.Printf("skipping style %s: %v", spec.Name, err)
			continue
		}
		added++
	}
	return added, nil
}
