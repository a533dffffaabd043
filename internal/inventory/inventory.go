// Package inventory lays out the project items inside the open suitcase.
// Items overlap, so hit testing always picks the top-most one by z.
package inventory

import (
	"sort"

	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/geom"
)

// Item is one project in the suitcase
type Item struct {
	Project    string
	Image      string
	HoverImage string
	Rect       geom.Rect // Percent of the suitcase panel
	Z          int
}

// Suitcase holds the items and which one the pointer is over
type Suitcase struct {
	// Items sorted by ascending z, which is also draw order
	items   []Item
	hovered int

	// OnSelect is called with the project name when an item is clicked
	OnSelect func(project string)
}

// New creates a suitcase from config
func New(cfg []config.SuitcaseItem) *Suitcase {
	s := &Suitcase{hovered: -1}
	for _, c := range cfg {
		s.items = append(s.items, Item{
			Project:    c.Project,
			Image:      c.Image,
			HoverImage: c.HoverImage,
			Rect:       c.Rect,
			Z:          c.Z,
		})
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Z < s.items[j].Z
	})
	return s
}

// Items returns the items in draw order
func (s *Suitcase) Items() []Item {
	return s.items
}

// Rect resolves an item's rect inside the panel's screen rect
func Rect(item Item, panel geom.Rect) geom.Rect {
	return item.Rect.PercentOf(panel)
}

func (s *Suitcase) indexAt(p geom.Point, panel geom.Rect) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if Rect(s.items[i], panel).Contains(p) {
			return i
		}
	}
	return -1
}

// ItemAt returns the top-most item under p
func (s *Suitcase) ItemAt(p geom.Point, panel geom.Rect) (Item, bool) {
	i := s.indexAt(p, panel)
	if i < 0 {
		return Item{}, false
	}
	return s.items[i], true
}

// Hover updates the hovered item. A nil pointer clears it.
func (s *Suitcase) Hover(p *geom.Point, panel geom.Rect) {
	if p == nil {
		s.hovered = -1
		return
	}
	s.hovered = s.indexAt(*p, panel)
}

// Hovered returns the item under the pointer
func (s *Suitcase) Hovered() (Item, bool) {
	if s.hovered < 0 {
		return Item{}, false
	}
	return s.items[s.hovered], true
}

// ImageFor returns the image to draw for an item, swapped while hovered
func (s *Suitcase) ImageFor(item Item) string {
	if h, ok := s.Hovered(); ok && h.Project == item.Project && item.HoverImage != "" {
		return item.HoverImage
	}
	return item.Image
}

// Click selects the top-most item under p
func (s *Suitcase) Click(p geom.Point, panel geom.Rect) bool {
	item, ok := s.ItemAt(p, panel)
	if !ok {
		return false
	}
	s.hovered = -1
	if s.OnSelect != nil {
		s.OnSelect(item.Project)
	}
	return true
}
