package game

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sync/atomic"

	"chosenoffset.com/raccoon/internal/assets"
	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/core/clock"
	"chosenoffset.com/raccoon/internal/core/geom"
	"chosenoffset.com/raccoon/internal/overlay"
	"chosenoffset.com/raccoon/internal/render"
	"chosenoffset.com/raccoon/internal/sprite"
)

// loadingImage is shown above the progress bar while assets preload.
const loadingImage = "assets/loadpusheen.png"

var (
	clrBarTrack = color.NRGBA{255, 255, 255, 60}
	clrBarFill  = color.NRGBA{255, 214, 120, 255}
)

// Manager handles the overall game state: the loading screen, then play.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Game         *Game
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Images       *assets.Cache
	Clock        clock.Clock

	Links  overlay.LinkOpener
	Videos overlay.VideoPlayer

	// Shader source (passed in from main)
	SpotlightShaderSrc []byte

	ctx         context.Context
	loaded      atomic.Int64
	total       atomic.Int64
	preloadDone chan error
}

// NewManager creates a new game manager in the loading state.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, images *assets.Cache, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        StateLoading,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Images:       images,
		Clock:        clock.System{},
	}
}

// SetShaderSource sets the spotlight shader source code.
func (m *Manager) SetShaderSource(src []byte) {
	m.SpotlightShaderSrc = src
}

// SetLinkOpener routes panel links, and videos, through opener.
func (m *Manager) SetLinkOpener(opener overlay.LinkOpener) {
	m.Links = opener
	m.Videos = overlay.NewExternalPlayer(opener)
}

// Start begins preloading the asset manifest in the background.
func (m *Manager) Start(ctx context.Context) {
	m.ctx = ctx
	manifest := m.Config.Assets.Manifest
	m.total.Store(int64(len(manifest.All())))
	m.preloadDone = make(chan error, 1)

	log.Printf("Preloading %d assets", m.total.Load())
	go func() {
		m.preloadDone <- m.Images.Preload(ctx, manifest, m.Config.Assets.Concurrency, func(p assets.Progress) {
			m.loaded.Store(int64(p.Loaded))
		})
	}()
}

// Progress returns the fraction of the manifest loaded so far.
func (m *Manager) Progress() float64 {
	total := m.total.Load()
	if total == 0 {
		return 1
	}
	return float64(m.loaded.Load()) / float64(total)
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case StateLoading:
		if m.preloadDone == nil {
			m.Start(context.Background())
		}
		select {
		case err := <-m.preloadDone:
			if err != nil {
				return fmt.Errorf("preload interrupted: %w", err)
			}
			if err := m.startGame(); err != nil {
				return err
			}
		default:
		}
	case StatePlaying:
		return m.Game.Update()
	}
	return nil
}

// startGame builds the game and enters the first scene without a fade.
func (m *Manager) startGame() error {
	g, err := NewGame(m.Config, Options{
		Renderer:        m.Renderer,
		InputMgr:        m.InputMgr,
		Images:          m.Images,
		Clock:           m.Clock,
		Links:           m.Links,
		Videos:          m.Videos,
		Sheet:           loadSheet(m.Config, m.Images),
		SpotlightShader: m.SpotlightShaderSrc,
		Viewport:        geom.Size{W: float64(m.ScreenWidth), H: float64(m.ScreenHeight)},
	})
	if err != nil {
		return err
	}

	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, m.Config.Transition.LoadTimeout)
	defer cancel()
	if err := g.Scenes.EnterImmediately(ctx, m.Config.StartScene); err != nil {
		return fmt.Errorf("failed to enter first scene: %w", err)
	}

	m.Game = g
	m.State = StatePlaying
	log.Printf("Game started in %s", m.Config.StartScene)
	return nil
}

// loadSheet loads the avatar sprite sheet. Any failure falls back to the
// placeholder drawn as a single frame.
func loadSheet(cfg *config.Config, images *assets.Cache) *sprite.Sheet {
	sc, err := sprite.LoadSheetConfig(cfg.Avatar.SpriteSheet)
	if err != nil {
		log.Printf("Warning: Failed to load sprite sheet, using placeholder: %v", err)
		return nil
	}
	img, ok := images.Get(sc.ImagePath)
	if !ok {
		log.Printf("Warning: Sprite sheet image %s not loaded, using placeholder", sc.ImagePath)
		return nil
	}
	return sprite.NewSheet(sc, img)
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateLoading:
		m.drawLoading(screen)
	case StatePlaying:
		m.Game.Draw(screen)
	}
}

func (m *Manager) drawLoading(screen render.Image) {
	screen.Fill(clrBackdrop)
	w, h := float64(m.ScreenWidth), float64(m.ScreenHeight)

	barW := w * 0.4
	bar := geom.Rect{X: (w - barW) / 2, Y: h*0.6 - 6, W: barW, H: 12}

	if img, ok := m.Images.Get(loadingImage); ok {
		iw, ih := img.Size()
		size := 160.0
		drawImageRect(screen, img, geom.Rect{X: (w - size) / 2, Y: bar.Y - size - 24, W: size, H: size * float64(ih) / float64(max(iw, 1))}, 0)
	}

	m.Renderer.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), clrBarTrack)
	m.Renderer.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W*m.Progress()), float32(bar.H), clrBarFill)

	label := fmt.Sprintf("Loading %d%%", int(m.Progress()*100))
	tw, _ := m.Renderer.MeasureText(label, panelTextSize)
	m.Renderer.DrawText(screen, label, (w-tw)/2, bar.Y+bar.H+16, clrText, panelTextSize)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.Game != nil {
			m.Game.Resize(geom.Size{W: float64(outsideWidth), H: float64(outsideHeight)})
		}
	}
	return outsideWidth, outsideHeight
}
