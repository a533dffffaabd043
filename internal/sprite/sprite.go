// Package sprite cuts animations out of a sprite sheet described by JSON.
package sprite

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"chosenoffset.com/raccoon/internal/render"
)

// AnimationDef is a run of frames along one row of the sheet
type AnimationDef struct {
	Row    int     `json:"row"`    // Row in the sheet (in frames)
	Start  int     `json:"start"`  // First column (in frames)
	Frames int     `json:"frames"` // Number of frames
	FPS    float64 `json:"fps"`    // Playback rate, 0 holds the first frame
}

// SheetConfig defines the JSON layout of a sprite sheet
type SheetConfig struct {
	Name        string                  `json:"name"`
	ImagePath   string                  `json:"image_path"`
	FrameWidth  int                     `json:"frame_width"`
	FrameHeight int                     `json:"frame_height"`
	Animations  map[string]AnimationDef `json:"animations"`
}

// LoadSheetConfig reads a sheet definition from a JSON file
func LoadSheetConfig(path string) (*SheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}
	cfg, err := ParseSheetConfig(data)
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSheetConfig parses and validates a sheet definition
func ParseSheetConfig(data []byte) (*SheetConfig, error) {
	var cfg SheetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks frame dimensions and animation runs
func (c *SheetConfig) Validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", c.FrameWidth, c.FrameHeight)
	}
	if c.ImagePath == "" {
		return fmt.Errorf("image_path is required in sprite sheet")
	}
	if len(c.Animations) == 0 {
		return fmt.Errorf("sprite sheet %q has no animations", c.Name)
	}
	for name, a := range c.Animations {
		if a.Frames <= 0 || a.Row < 0 || a.Start < 0 || a.FPS < 0 {
			return fmt.Errorf("invalid animation %q", name)
		}
	}
	return nil
}

// Sheet is a loaded sprite sheet
type Sheet struct {
	Config *SheetConfig
	Image  render.Image
}

// NewSheet pairs a definition with its image
func NewSheet(cfg *SheetConfig, img render.Image) *Sheet {
	return &Sheet{Config: cfg, Image: img}
}

// SingleFrame makes a sheet that shows the whole image for every named
// animation. It stands in when the real sheet cannot be loaded.
func SingleFrame(img render.Image, names ...string) *Sheet {
	w, h := img.Size()
	cfg := &SheetConfig{
		Name:        "single",
		FrameWidth:  w,
		FrameHeight: h,
		Animations:  make(map[string]AnimationDef, len(names)),
	}
	for _, n := range names {
		cfg.Animations[n] = AnimationDef{Frames: 1}
	}
	return &Sheet{Config: cfg, Image: img}
}

// Animation returns an animation definition by name
func (s *Sheet) Animation(name string) (AnimationDef, bool) {
	a, ok := s.Config.Animations[name]
	return a, ok
}

// Frame returns frame i of an animation, wrapping past the end
func (s *Sheet) Frame(name string, i int) (render.Image, bool) {
	a, ok := s.Animation(name)
	if !ok {
		return nil, false
	}
	col := a.Start + i%a.Frames
	x := col * s.Config.FrameWidth
	y := a.Row * s.Config.FrameHeight
	rect := image.Rect(x, y, x+s.Config.FrameWidth, y+s.Config.FrameHeight)
	if !rect.In(s.Image.Bounds()) {
		return nil, false
	}
	return s.Image.SubImage(rect), true
}

// Animator plays one animation of a sheet at a time
type Animator struct {
	sheet   *Sheet
	current string
	elapsed float64
}

// NewAnimator starts playing initial
func NewAnimator(sheet *Sheet, initial string) *Animator {
	return &Animator{sheet: sheet, current: initial}
}

// Play switches animation. Playing the current one keeps its progress.
func (a *Animator) Play(name string) {
	if name == a.current {
		return
	}
	a.current = name
	a.elapsed = 0
}

// Current returns the playing animation name
func (a *Animator) Current() string {
	return a.current
}

// Update advances playback by dt seconds
func (a *Animator) Update(dt float64) {
	a.elapsed += dt
}

// FrameIndex returns the frame number within the current animation
func (a *Animator) FrameIndex() int {
	def, ok := a.sheet.Animation(a.current)
	if !ok || def.FPS == 0 {
		return 0
	}
	return int(a.elapsed*def.FPS) % def.Frames
}

// Frame returns the image to draw this frame
func (a *Animator) Frame() (render.Image, bool) {
	return a.sheet.Frame(a.current, a.FrameIndex())
}
