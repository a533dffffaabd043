package overlay

import (
	"errors"
	"path/filepath"
	"testing"

	"chosenoffset.com/raccoon/internal/config"
)

type fakeVideos struct {
	played []string
	paused []string
}

func (f *fakeVideos) Play(v Video) error   { f.played = append(f.played, v.ID); return nil }
func (f *fakeVideos) Pause(videoID string) { f.paused = append(f.paused, videoID) }

type fakeLinks struct {
	opened []string
	err    error
}

func (f *fakeLinks) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func newTestStack(t *testing.T) (*Stack, *fakeVideos, *fakeLinks) {
	t.Helper()
	videos := &fakeVideos{}
	links := &fakeLinks{}
	s, err := NewStack(config.DefaultConfig().Panels, videos, links)
	if err != nil {
		t.Fatalf("NewStack failed: %v", err)
	}
	return s, videos, links
}

func TestParseID(t *testing.T) {
	for _, s := range []string{"inventory", "shelf", "about_me", "project/jam"} {
		id, err := ParseID(s)
		if err != nil {
			t.Fatalf("ParseID(%q) failed: %v", s, err)
		}
		if id.String() != s {
			t.Errorf("Expected round trip %q, got %q", s, id.String())
		}
	}
	for _, s := range []string{"", "project/", "closet"} {
		if _, err := ParseID(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestOpenIsMutuallyExclusive(t *testing.T) {
	s, _, _ := newTestStack(t)
	shelf := ID{Kind: KindShelf}

	if !s.Open(Inventory) {
		t.Fatal("Expected inventory to open")
	}
	if s.Open(shelf) {
		t.Error("Expected shelf open to be refused while inventory is open")
	}
	if s.Open(Inventory) {
		t.Error("Expected reopening the open panel to be a no-op")
	}
	if s.Current() != Inventory {
		t.Errorf("Expected inventory open, got %v", s.Current())
	}
}

func TestCloseReopensParent(t *testing.T) {
	s, _, _ := newTestStack(t)
	var changes []ID
	s.OnChange = func(id ID) { changes = append(changes, id) }

	jam := Project("jam")
	if !s.Open(jam) {
		t.Fatal("Expected jam to open")
	}
	if !s.Close(jam) {
		t.Fatal("Expected jam to close")
	}
	if s.Current() != Inventory {
		t.Errorf("Expected inventory after closing a project, got %v", s.Current())
	}
	if len(changes) != 2 || changes[1] != Inventory {
		t.Errorf("Expected change notifications [jam inventory], got %v", changes)
	}

	s.CloseCurrent()
	if s.IsOpen() {
		t.Errorf("Expected everything closed, got %v", s.Current())
	}
}

func TestCloseWrongPanelIgnored(t *testing.T) {
	s, _, _ := newTestStack(t)
	s.Open(Inventory)
	if s.Close(Project("jam")) {
		t.Error("Expected closing a panel that is not open to be ignored")
	}
	if s.Current() != Inventory {
		t.Errorf("Expected inventory still open, got %v", s.Current())
	}
}

func TestUnknownPanelIgnored(t *testing.T) {
	s, _, _ := newTestStack(t)
	if s.Open(Project("ghost")) {
		t.Error("Expected unknown panel to be refused")
	}
}

func TestVideoPausedOnCloseAndPageChange(t *testing.T) {
	s, videos, _ := newTestStack(t)
	ff := Project("fatherfigure")
	s.Open(ff)

	if err := s.PlayVideo(); err != nil {
		t.Fatalf("PlayVideo failed: %v", err)
	}
	if len(videos.played) != 1 || videos.played[0] != "fatherfigure-demo" {
		t.Fatalf("Expected demo to play, got %v", videos.played)
	}

	if !s.NextPage() {
		t.Fatal("Expected second page")
	}
	if len(videos.paused) != 1 || videos.paused[0] != "fatherfigure-demo" {
		t.Errorf("Expected pause on leaving page 1, got %v", videos.paused)
	}
	if s.NextPage() {
		t.Error("Expected no page past the last")
	}

	s.Close(ff)
	if len(videos.paused) != 2 {
		t.Errorf("Expected pause on close, got %v", videos.paused)
	}
}

func TestOpenResetsToFirstPage(t *testing.T) {
	s, _, _ := newTestStack(t)
	ff := Project("fatherfigure")
	s.Open(ff)
	s.NextPage()
	s.Close(ff)
	s.CloseCurrent()

	s.Open(ff)
	if idx, count := s.Page(); idx != 0 || count != 2 {
		t.Errorf("Expected page 0 of 2, got %d of %d", idx, count)
	}
}

func TestOpenLinkKeepsPanelOpen(t *testing.T) {
	s, _, links := newTestStack(t)
	jam := Project("jam")
	s.Open(jam)

	if err := s.OpenLink(1); err != nil {
		t.Fatalf("OpenLink failed: %v", err)
	}
	if len(links.opened) != 1 || links.opened[0] != "https://eye-tester-app.vercel.app" {
		t.Errorf("Expected demo link opened, got %v", links.opened)
	}
	if s.Current() != jam {
		t.Errorf("Expected jam to stay open, got %v", s.Current())
	}

	links.err = errors.New("no browser")
	if err := s.OpenLink(0); err == nil {
		t.Error("Expected link error to surface")
	}
}

func TestBrowserOpenerRoutesByScheme(t *testing.T) {
	var urls, files []string
	b := &BrowserOpener{
		Root:     "site",
		openURL:  func(u string) error { urls = append(urls, u); return nil },
		openFile: func(f string) error { files = append(files, f); return nil },
	}

	b.Open("https://devpost.com/software/lucy-0v6lpm")
	b.Open("assets/DesignTO Marketing Campaign-FionaFang.pdf")

	if len(urls) != 1 {
		t.Errorf("Expected one URL, got %v", urls)
	}
	want := filepath.Join("site", "assets", "DesignTO Marketing Campaign-FionaFang.pdf")
	if len(files) != 1 || files[0] != want {
		t.Errorf("Expected file %q, got %v", want, files)
	}
}

func TestExternalPlayerTracksPlayback(t *testing.T) {
	links := &fakeLinks{}
	p := NewExternalPlayer(links)
	v := Video{ID: "lucy-demo", URL: "https://www.youtube.com/watch?v=GRENRaAo0oI"}

	p.Play(v)
	p.Play(v)
	if len(links.opened) != 1 || !p.Playing("lucy-demo") {
		t.Errorf("Expected a single open and playing state, got %v", links.opened)
	}
	p.Pause("lucy-demo")
	if p.Playing("lucy-demo") {
		t.Error("Expected paused")
	}
}
