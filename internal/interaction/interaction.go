// Package interaction decides which single hotspot prompt is visible each
// frame and where it sits on screen.
package interaction

import (
	"sort"

	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/scene"
)

// TriggerType is what put a hotspot in range.
type TriggerType string

const (
	TriggerProximity TriggerType = "proximity" // Avatar feet within the radius
	TriggerHover     TriggerType = "hover"     // Pointer over the hotspot's visual
)

// Prompt is the visible interaction prompt.
type Prompt struct {
	Visible bool
	Hotspot scene.Placed
	Trigger TriggerType
	Label   string
	Screen  geom.Point // Bottom-center of the prompt in screen pixels
}

// Frame is everything the engine looks at in one evaluation.
type Frame struct {
	Hotspots []scene.Placed
	Avatar   geom.Point
	// Pointer is the cursor in world coordinates, nil when there is none.
	Pointer *geom.Point
	// Project maps a world point to the screen.
	Project func(geom.Point) geom.Point
	// Suspended is set while an overlay is open or a transition runs.
	Suspended bool
}

type candidate struct {
	hotspot scene.Placed
	trigger TriggerType
	dist    float64
	index   int
}

// Engine holds the current prompt.
type Engine struct {
	prompt Prompt
}

// NewEngine creates an engine with no prompt showing.
func NewEngine() *Engine {
	return &Engine{}
}

// Prompt returns the last evaluated prompt.
func (e *Engine) Prompt() Prompt {
	return e.prompt
}

// Evaluate recomputes the prompt. Among hotspots in range, items outrank
// traversals, then hovered beats proximity, then the nearest wins, then
// declaration order.
func (e *Engine) Evaluate(f Frame) Prompt {
	e.prompt = Prompt{}
	if f.Suspended {
		return e.prompt
	}

	var near []candidate
	for i, h := range f.Hotspots {
		d := geom.Distance(f.Avatar, h.Pos)
		switch {
		case f.Pointer != nil && h.HasVisual() && h.Rect.Contains(*f.Pointer):
			near = append(near, candidate{h, TriggerHover, d, i})
		case d <= h.Radius:
			near = append(near, candidate{h, TriggerProximity, d, i})
		}
	}
	if len(near) == 0 {
		return e.prompt
	}

	sort.SliceStable(near, func(i, j int) bool {
		a, b := near[i], near[j]
		if a.hotspot.Kind != b.hotspot.Kind {
			return a.hotspot.Kind < b.hotspot.Kind
		}
		if a.trigger != b.trigger {
			return a.trigger == TriggerHover
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.index < b.index
	})

	best := near[0]
	screen := best.hotspot.Pos
	if f.Project != nil {
		screen = f.Project(screen)
	}
	e.prompt = Prompt{
		Visible: true,
		Hotspot: best.hotspot,
		Trigger: best.trigger,
		Label:   best.hotspot.Label,
		Screen:  screen.Add(best.hotspot.PromptOffset),
	}
	return e.prompt
}

// Activate returns the visible prompt's hotspot. It reports false, and the
// request is ignored, when no prompt is visible.
func (e *Engine) Activate() (scene.Placed, bool) {
	if !e.prompt.Visible {
		return scene.Placed{}, false
	}
	return e.prompt.Hotspot, true
}

// Hide clears the prompt until the next evaluation.
func (e *Engine) Hide() {
	e.prompt = Prompt{}
}
