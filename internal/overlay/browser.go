package overlay

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/zyedidia/generic/mapset"
)

// BrowserOpener opens web links in the system browser and local documents
// (resolved against Root) with the system viewer.
type BrowserOpener struct {
	Root string

	openURL  func(string) error
	openFile func(string) error
}

// NewBrowserOpener creates an opener backed by the system browser.
func NewBrowserOpener(root string) *BrowserOpener {
	return &BrowserOpener{Root: root, openURL: browser.OpenURL, openFile: browser.OpenFile}
}

// Open implements LinkOpener.
func (b *BrowserOpener) Open(url string) error {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return b.openURL(url)
	}
	path := filepath.Join(b.Root, filepath.FromSlash(url))
	if err := b.openFile(path); err != nil {
		return fmt.Errorf("failed to open document %s: %w", path, err)
	}
	return nil
}

// ExternalPlayer plays videos by handing their URL to a LinkOpener. It
// tracks which videos are playing so pauses can be honored.
type ExternalPlayer struct {
	links   LinkOpener
	playing mapset.Set[string]
}

// NewExternalPlayer creates a player that opens videos through links.
func NewExternalPlayer(links LinkOpener) *ExternalPlayer {
	return &ExternalPlayer{links: links, playing: mapset.New[string]()}
}

// Play implements VideoPlayer.
func (p *ExternalPlayer) Play(v Video) error {
	if p.playing.Has(v.ID) {
		return nil
	}
	if err := p.links.Open(v.URL); err != nil {
		return err
	}
	p.playing.Put(v.ID)
	return nil
}

// Pause implements VideoPlayer. It only clears the playing mark; a video
// already open in the browser keeps running there.
func (p *ExternalPlayer) Pause(videoID string) {
	p.playing.Remove(videoID)
}

// Playing reports whether a video is playing.
func (p *ExternalPlayer) Playing(videoID string) bool {
	return p.playing.Has(videoID)
}
