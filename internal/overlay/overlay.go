// Package overlay manages the full-screen content panels: the suitcase
// inventory, project panels, the shelf and the about-me note. At most one
// panel is open at a time; a panel may name a parent that reopens when it
// closes.
package overlay

import (
	"fmt"
	"log"
	"strings"

	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/geom"
)

// Kind tags which panel is open.
type Kind int

const (
	KindNone Kind = iota
	KindInventory
	KindProject
	KindShelf
	KindAboutMe
)

// ID identifies a panel. Only project panels carry a name.
type ID struct {
	Kind Kind
	Name string
}

// None is the closed state.
var None = ID{}

// Inventory is the suitcase panel.
var Inventory = ID{Kind: KindInventory}

// Project returns the id of a project panel.
func Project(name string) ID {
	return ID{Kind: KindProject, Name: name}
}

func (id ID) String() string {
	switch id.Kind {
	case KindInventory:
		return "inventory"
	case KindProject:
		return "project/" + id.Name
	case KindShelf:
		return "shelf"
	case KindAboutMe:
		return "about_me"
	default:
		return "none"
	}
}

// ParseID parses "inventory", "shelf", "about_me" or "project/<name>".
func ParseID(s string) (ID, error) {
	switch s {
	case "inventory":
		return Inventory, nil
	case "shelf":
		return ID{Kind: KindShelf}, nil
	case "about_me":
		return ID{Kind: KindAboutMe}, nil
	}
	if name, ok := strings.CutPrefix(s, "project/"); ok && name != "" {
		return Project(name), nil
	}
	return None, fmt.Errorf("unknown panel id %q", s)
}

// Video is an embedded video on a page.
type Video struct {
	ID   string
	URL  string
	Rect geom.Rect // Percent of the panel
}

// Link is an external link icon on a page.
type Link struct {
	Label string
	URL   string
	Icon  string
	Rect  geom.Rect // Percent of the panel
}

// Page is one page of a panel.
type Page struct {
	Background string
	Video      *Video
	Links      []Link
}

// Panel is an overlay definition.
type Panel struct {
	ID     ID
	Parent ID
	Pages  []Page
}

// VideoPlayer plays and pauses embedded videos.
type VideoPlayer interface {
	Play(v Video) error
	Pause(videoID string)
}

// LinkOpener opens external links.
type LinkOpener interface {
	Open(url string) error
}

// Stack holds the configured panels, the one open panel (or None) and its
// current page. A panel with a parent reopens the parent when closed.
type Stack struct {
	panels  map[ID]*Panel
	current ID
	page    int

	videos VideoPlayer
	links  LinkOpener

	// OnChange runs after every open or close with the new current panel.
	OnChange func(current ID)
}

// NewStack builds panels from config.
func NewStack(cfgs []config.PanelConfig, videos VideoPlayer, links LinkOpener) (*Stack, error) {
	s := &Stack{
		panels: make(map[ID]*Panel, len(cfgs)),
		videos: videos,
		links:  links,
	}
	for _, pc := range cfgs {
		id, err := ParseID(pc.ID)
		if err != nil {
			return nil, err
		}
		p := &Panel{ID: id}
		if pc.Parent != "" {
			if p.Parent, err = ParseID(pc.Parent); err != nil {
				return nil, fmt.Errorf("panel %s: %w", pc.ID, err)
			}
		}
		for _, pg := range pc.Pages {
			page := Page{Background: pg.Background}
			if pg.Video != nil {
				page.Video = &Video{ID: pg.Video.ID, URL: pg.Video.URL, Rect: pg.Video.Rect}
			}
			for _, l := range pg.Links {
				page.Links = append(page.Links, Link{Label: l.Label, URL: l.URL, Icon: l.Icon, Rect: l.Rect})
			}
			p.Pages = append(p.Pages, page)
		}
		if len(p.Pages) == 0 {
			p.Pages = []Page{{}}
		}
		s.panels[id] = p
	}
	return s, nil
}

// Panel returns a panel definition.
func (s *Stack) Panel(id ID) (*Panel, bool) {
	p, ok := s.panels[id]
	return p, ok
}

// Current returns the open panel, or None.
func (s *Stack) Current() ID {
	return s.current
}

// IsOpen reports whether any panel is open.
func (s *Stack) IsOpen() bool {
	return s.current != None
}

// Open shows a panel on its first page. It is a no-op when any panel,
// including this one, is already open or the id is unknown.
func (s *Stack) Open(id ID) bool {
	if s.current != None {
		return false
	}
	if _, ok := s.panels[id]; !ok {
		log.Printf("Warning: Ignoring request for unknown panel %s", id)
		return false
	}
	s.current = id
	s.page = 0
	s.changed()
	return true
}

// Close hides the panel if it is the open one, pausing its videos, and
// reopens its parent if it has one.
func (s *Stack) Close(id ID) bool {
	if id == None || s.current != id {
		return false
	}
	p := s.panels[id]
	s.pauseAll(p)

	s.current = None
	s.page = 0
	if p.Parent != None {
		if _, ok := s.panels[p.Parent]; ok {
			s.current = p.Parent
		}
	}
	s.changed()
	return true
}

// CloseCurrent closes whatever is open.
func (s *Stack) CloseCurrent() bool {
	return s.Close(s.current)
}

// Page returns the open panel's page index and page count.
func (s *Stack) Page() (index, count int) {
	p, ok := s.panels[s.current]
	if !ok {
		return 0, 0
	}
	return s.page, len(p.Pages)
}

// CurrentPage returns the visible page.
func (s *Stack) CurrentPage() (*Page, bool) {
	p, ok := s.panels[s.current]
	if !ok {
		return nil, false
	}
	return &p.Pages[s.page], true
}

// NextPage turns forward. The page being left has its video paused.
func (s *Stack) NextPage() bool {
	return s.turn(1)
}

// PrevPage turns back.
func (s *Stack) PrevPage() bool {
	return s.turn(-1)
}

func (s *Stack) turn(delta int) bool {
	p, ok := s.panels[s.current]
	if !ok {
		return false
	}
	next := s.page + delta
	if next < 0 || next >= len(p.Pages) {
		return false
	}
	if v := p.Pages[s.page].Video; v != nil && s.videos != nil {
		s.videos.Pause(v.ID)
	}
	s.page = next
	return true
}

// PlayVideo starts the visible page's video.
func (s *Stack) PlayVideo() error {
	page, ok := s.CurrentPage()
	if !ok || page.Video == nil || s.videos == nil {
		return nil
	}
	return s.videos.Play(*page.Video)
}

// OpenLink follows link i of the visible page. The panel stays open.
func (s *Stack) OpenLink(i int) error {
	page, ok := s.CurrentPage()
	if !ok || i < 0 || i >= len(page.Links) {
		return nil
	}
	if s.links == nil {
		return nil
	}
	if err := s.links.Open(page.Links[i].URL); err != nil {
		return fmt.Errorf("failed to open %s: %w", page.Links[i].URL, err)
	}
	return nil
}

func (s *Stack) pauseAll(p *Panel) {
	if s.videos == nil {
		return
	}
	for _, pg := range p.Pages {
		if pg.Video != nil {
			s.videos.Pause(pg.Video.ID)
		}
	}
}

func (s *Stack) changed() {
	if s.OnChange != nil {
		s.OnChange(s.current)
	}
}
