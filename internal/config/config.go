// Package config holds the tunable rules and content of the game: physics,
// camera, fades, scenes, hotspots and overlay panels. Everything has a
// default so the game runs without a data file; a YAML file overrides it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/raccoon/internal/core/geom"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game rules and content.
type Config struct {
	// Reference is the viewport the art was authored against; it is also
	// the world size used when a background fails to load on first entry.
	Reference geom.Size `yaml:"reference"`

	Avatar     AvatarConfig     `yaml:"avatar"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Transition TransitionConfig `yaml:"transition"`
	Spotlight  SpotlightConfig  `yaml:"spotlight"`
	Assets     AssetsConfig     `yaml:"assets"`

	StartScene string         `yaml:"start_scene"`
	Scenes     []SceneConfig  `yaml:"scenes"`
	Panels     []PanelConfig  `yaml:"panels"`
	Suitcase   []SuitcaseItem `yaml:"suitcase"`
	TouchPad   TouchPadConfig `yaml:"touch_pad"`
}

// AvatarConfig describes the raccoon.
type AvatarConfig struct {
	Width       float64 `yaml:"width"`        // Drawn width in px
	Speed       float64 `yaml:"speed"`        // Horizontal px per second
	SpriteSheet string  `yaml:"sprite_sheet"` // JSON sprite sheet path
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // px/s^2 downward
	JumpSpeed  float64 `yaml:"jump_speed"`  // Initial upward speed
	ClimbSpeed float64 `yaml:"climb_speed"` // px/s while up/down is held
}

// CameraConfig defines how the viewport follows the avatar.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // Fraction of the gap closed per frame
	AnchorY   float64 `yaml:"anchor_y"`  // Avatar feet height as a fraction of the viewport
}

// TransitionConfig defines fade timing.
type TransitionConfig struct {
	FadeDuration  time.Duration `yaml:"fade_duration"`
	FadeTimeout   time.Duration `yaml:"fade_timeout"`    // Worst case wait for a fade to report completion
	LoadTimeout   time.Duration `yaml:"load_timeout"`    // Background loads give up after this
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Frame deltas above this are clamped
}

// SpotlightConfig tunes the outdoor spotlight.
type SpotlightConfig struct {
	Radius   float64 `yaml:"radius"`
	Darkness float64 `yaml:"darkness"`
}

// AssetsConfig locates assets and lists what to preload.
type AssetsConfig struct {
	Root        string   `yaml:"root"`
	AssetMap    string   `yaml:"asset_map"`
	Concurrency int      `yaml:"concurrency"`
	Manifest    Manifest `yaml:"manifest"`
}

// Manifest groups asset keys by load priority.
type Manifest struct {
	Critical []string `yaml:"critical"`
	UI       []string `yaml:"ui"`
	Projects []string `yaml:"projects"`
	Content  []string `yaml:"content"`
}

// All returns every key in priority order.
func (m Manifest) All() []string {
	all := make([]string, 0, len(m.Critical)+len(m.UI)+len(m.Projects)+len(m.Content))
	all = append(all, m.Critical...)
	all = append(all, m.UI...)
	all = append(all, m.Projects...)
	all = append(all, m.Content...)
	return all
}

// SceneConfig describes one scene.
type SceneConfig struct {
	ID            string          `yaml:"id"`
	Background    string          `yaml:"background"`
	Fit           string          `yaml:"fit"` // cover, contain or fit_height
	Zoom          float64         `yaml:"zoom"`
	GroundOffset  float64         `yaml:"ground_offset"`  // px above the world bottom
	CeilingOffset float64         `yaml:"ceiling_offset"` // px below the world top
	Spawn         SpawnConfig     `yaml:"spawn"`
	Spotlight     bool            `yaml:"spotlight"`
	Greeting      GreetingConfig  `yaml:"greeting"`
	Hotspots      []HotspotConfig `yaml:"hotspots"`
}

// SpawnConfig is either a percentage point or an absolute x. The avatar is
// always snapped to the ground line on spawn.
type SpawnConfig struct {
	Percent *geom.Percent `yaml:"percent,omitempty"`
	X       float64       `yaml:"x"`
}

// GreetingConfig is the chat bubble shown on entering a scene.
type GreetingConfig struct {
	Text     string        `yaml:"text"`
	Duration time.Duration `yaml:"duration"`
}

// HotspotConfig describes a proximity zone.
type HotspotConfig struct {
	ID           string        `yaml:"id"`
	Kind         string        `yaml:"kind"` // item or traversal
	Anchor       geom.Percent  `yaml:"anchor"`
	Radius       float64       `yaml:"radius"`
	Label        string        `yaml:"label"`
	PromptOffset geom.Point    `yaml:"prompt_offset"`
	Visual       *VisualConfig `yaml:"visual,omitempty"`
	Effect       EffectConfig  `yaml:"effect"`
}

// VisualConfig is an image drawn centered on the hotspot anchor. Its
// rectangle also receives pointer hover.
type VisualConfig struct {
	Image     string  `yaml:"image"`
	WidthPct  float64 `yaml:"width_pct"`  // Of world width
	HeightPct float64 `yaml:"height_pct"` // Of world height
}

// EffectConfig is what activating a hotspot does. Overlay and Scene may
// both be set.
type EffectConfig struct {
	Overlay string `yaml:"overlay,omitempty"`
	Scene   string `yaml:"scene,omitempty"`
	Arrive  string `yaml:"arrive,omitempty"` // Hotspot in the target scene to arrive at
}

// PanelConfig describes an overlay panel.
type PanelConfig struct {
	ID     string       `yaml:"id"`               // inventory, shelf, about_me or project/<name>
	Parent string       `yaml:"parent,omitempty"` // Panel reopened when this one closes
	Pages  []PageConfig `yaml:"pages"`
}

// PageConfig is one page of a panel.
type PageConfig struct {
	Background string       `yaml:"background"`
	Video      *VideoConfig `yaml:"video,omitempty"`
	Links      []LinkConfig `yaml:"links,omitempty"`
}

// VideoConfig is an embedded video bound to a page.
type VideoConfig struct {
	ID   string    `yaml:"id"`
	URL  string    `yaml:"url"`
	Rect geom.Rect `yaml:"rect"` // Percent of panel
}

// LinkConfig is an external link drawn as an icon on a page.
type LinkConfig struct {
	Label string    `yaml:"label"`
	URL   string    `yaml:"url"`
	Icon  string    `yaml:"icon"`
	Rect  geom.Rect `yaml:"rect"` // Percent of panel
}

// SuitcaseItem places a project inside the inventory overlay.
type SuitcaseItem struct {
	Project    string    `yaml:"project"`
	Image      string    `yaml:"image"`
	HoverImage string    `yaml:"hover_image"`
	Rect       geom.Rect `yaml:"rect"` // Percent of panel
	Z          int       `yaml:"z"`
}

// TouchPadConfig sizes the on-screen touch buttons.
type TouchPadConfig struct {
	ButtonSize float64 `yaml:"button_size"`
	Margin     float64 `yaml:"margin"`
}

// LoadConfig loads config from a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross references and physical constants.
func (c *Config) Validate() error {
	if c.Avatar.Speed <= 0 || c.Physics.ClimbSpeed <= 0 || c.Physics.JumpSpeed <= 0 || c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: speeds and gravity must be positive", ErrInvalid)
	}
	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("%w: camera smoothing must be in (0, 1]", ErrInvalid)
	}

	scenes := make(map[string]*SceneConfig, len(c.Scenes))
	for i := range c.Scenes {
		s := &c.Scenes[i]
		if s.ID == "" {
			return fmt.Errorf("%w: scene %d has no id", ErrInvalid, i)
		}
		scenes[s.ID] = s
	}
	if _, ok := scenes[c.StartScene]; !ok {
		return fmt.Errorf("%w: unknown start scene %q", ErrInvalid, c.StartScene)
	}

	panels := make(map[string]bool, len(c.Panels))
	for _, p := range c.Panels {
		panels[p.ID] = true
	}
	for _, p := range c.Panels {
		if p.Parent != "" && !panels[p.Parent] {
			return fmt.Errorf("%w: panel %s has unknown parent %q", ErrInvalid, p.ID, p.Parent)
		}
	}

	for _, s := range c.Scenes {
		for _, h := range s.Hotspots {
			if h.Radius <= 0 {
				return fmt.Errorf("%w: hotspot %s/%s radius must be positive", ErrInvalid, s.ID, h.ID)
			}
			if h.Kind != "item" && h.Kind != "traversal" {
				return fmt.Errorf("%w: hotspot %s/%s has unknown kind %q", ErrInvalid, s.ID, h.ID, h.Kind)
			}
			if h.Effect.Overlay == "" && h.Effect.Scene == "" {
				return fmt.Errorf("%w: hotspot %s/%s has no effect", ErrInvalid, s.ID, h.ID)
			}
			if h.Effect.Overlay != "" && !panels[h.Effect.Overlay] {
				return fmt.Errorf("%w: hotspot %s/%s opens unknown panel %q", ErrInvalid, s.ID, h.ID, h.Effect.Overlay)
			}
			if h.Effect.Scene != "" {
				target, ok := scenes[h.Effect.Scene]
				if !ok {
					return fmt.Errorf("%w: hotspot %s/%s targets unknown scene %q", ErrInvalid, s.ID, h.ID, h.Effect.Scene)
				}
				if h.Effect.Arrive != "" && !hasHotspot(target, h.Effect.Arrive) {
					return fmt.Errorf("%w: hotspot %s/%s arrives at unknown hotspot %q", ErrInvalid, s.ID, h.ID, h.Effect.Arrive)
				}
			}
		}
	}

	for _, item := range c.Suitcase {
		if !panels["project/"+item.Project] {
			return fmt.Errorf("%w: suitcase item %q has no project panel", ErrInvalid, item.Project)
		}
	}
	return nil
}

func hasHotspot(s *SceneConfig, id string) bool {
	for _, h := range s.Hotspots {
		if h.ID == id {
			return true
		}
	}
	return false
}

// FrameDelta converts a wall clock gap into a simulation step in seconds.
func (t TransitionConfig) FrameDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if t.MaxFrameDelta > 0 && d > t.MaxFrameDelta {
		d = t.MaxFrameDelta
	}
	return d.Seconds()
}
