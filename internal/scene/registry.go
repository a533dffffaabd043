// Package scene describes the game's scenes and owns the current one:
// background fit, hotspot placement, spawning and scene changes.
package scene

import (
	"fmt"

	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/geom"
)

// Kind ranks hotspots when several are in range. Items outrank traversals.
type Kind int

const (
	KindItem Kind = iota
	KindTraversal
)

func (k Kind) String() string {
	if k == KindItem {
		return "item"
	}
	return "traversal"
}

// ParseKind parses "item" or "traversal".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "item":
		return KindItem, nil
	case "traversal":
		return KindTraversal, nil
	}
	return 0, fmt.Errorf("unknown hotspot kind %q", s)
}

// FitMode is how a background is scaled into the viewport.
type FitMode int

const (
	FitCover   FitMode = iota // Fill the viewport, cropping overflow
	FitContain                // Show the whole image, centered
	FitHeight                 // Match viewport height, scroll horizontally
)

// ParseFitMode parses "cover", "contain" or "fit_height".
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "cover", "":
		return FitCover, nil
	case "contain":
		return FitContain, nil
	case "fit_height":
		return FitHeight, nil
	}
	return 0, fmt.Errorf("unknown fit mode %q", s)
}

// Effect is what activating a hotspot does. Overlay and Scene may both be
// set, in which case the overlay opens after the scene change completes.
type Effect struct {
	Overlay string
	Scene   string
	Arrive  string // Hotspot id in the target scene to stand at
}

// Visual is an image drawn at a hotspot that also accepts pointer hover.
type Visual struct {
	Image     string
	WidthPct  float64
	HeightPct float64
}

// Hotspot is a named proximity zone. Anchor is a percentage of the world
// size; its pixel position only exists for a fitted world.
type Hotspot struct {
	ID           string
	Kind         Kind
	Anchor       geom.Percent
	Radius       float64
	Label        string
	PromptOffset geom.Point
	Visual       *Visual
	Effect       Effect
}

// Spawn is where the avatar appears when nothing else is requested.
type Spawn struct {
	Percent *geom.Percent
	X       float64
}

// At returns the spawn x for a world size.
func (s Spawn) At(world geom.Size) float64 {
	if s.Percent != nil {
		return s.Percent.Resolve(world).X
	}
	return s.X
}

// Greeting is the bubble shown on entering.
type Greeting struct {
	Text    string
	Seconds float64
}

// Scene is one authored area.
type Scene struct {
	ID            string
	Background    string
	Fit           FitMode
	Zoom          float64
	GroundOffset  float64
	CeilingOffset float64
	Spawn         Spawn
	Spotlight     bool
	Greeting      Greeting
	Hotspots      []Hotspot
}

// Hotspot finds a hotspot by id.
func (s *Scene) Hotspot(id string) (*Hotspot, bool) {
	for i := range s.Hotspots {
		if s.Hotspots[i].ID == id {
			return &s.Hotspots[i], true
		}
	}
	return nil, false
}

// Registry holds every scene by id.
type Registry struct {
	scenes map[string]*Scene
	order  []string
}

// NewRegistry builds scenes from config.
func NewRegistry(cfgs []config.SceneConfig) (*Registry, error) {
	r := &Registry{scenes: make(map[string]*Scene, len(cfgs))}
	for _, sc := range cfgs {
		s, err := fromConfig(sc)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %s: %w", sc.ID, err)
		}
		if _, dup := r.scenes[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scene %s", s.ID)
		}
		r.scenes[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r, nil
}

// Get returns a scene by id.
func (r *Registry) Get(id string) (*Scene, bool) {
	s, ok := r.scenes[id]
	return s, ok
}

// IDs returns scene ids in declaration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func fromConfig(sc config.SceneConfig) (*Scene, error) {
	fit, err := ParseFitMode(sc.Fit)
	if err != nil {
		return nil, err
	}
	zoom := sc.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	s := &Scene{
		ID:            sc.ID,
		Background:    sc.Background,
		Fit:           fit,
		Zoom:          zoom,
		GroundOffset:  sc.GroundOffset,
		CeilingOffset: sc.CeilingOffset,
		Spawn:         Spawn{Percent: sc.Spawn.Percent, X: sc.Spawn.X},
		Spotlight:     sc.Spotlight,
		Greeting:      Greeting{Text: sc.Greeting.Text, Seconds: sc.Greeting.Duration.Seconds()},
	}

	for _, hc := range sc.Hotspots {
		kind, err := ParseKind(hc.Kind)
		if err != nil {
			return nil, err
		}
		h := Hotspot{
			ID:           hc.ID,
			Kind:         kind,
			Anchor:       hc.Anchor,
			Radius:       hc.Radius,
			Label:        hc.Label,
			PromptOffset: hc.PromptOffset,
			Effect: Effect{
				Overlay: hc.Effect.Overlay,
				Scene:   hc.Effect.Scene,
				Arrive:  hc.Effect.Arrive,
			},
		}
		if hc.Visual != nil {
			h.Visual = &Visual{Image: hc.Visual.Image, WidthPct: hc.Visual.WidthPct, HeightPct: hc.Visual.HeightPct}
		}
		s.Hotspots = append(s.Hotspots, h)
	}
	return s, nil
}
