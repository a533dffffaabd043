// Package rendertest provides in-memory fakes of the render interfaces so
// game logic can be exercised without a window or GPU.
package rendertest

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"chosenoffset.com/raccoon/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

var (
	_ render.Image          = (*Image)(nil)
	_ render.GeoM           = (*GeoM)(nil)
	_ render.Renderer       = (*Renderer)(nil)
	_ render.ResourceLoader = (*Loader)(nil)
	_ render.InputManager   = (*Input)(nil)
)

// Image is a fake render.Image that records draw calls.
type Image struct {
	W, H  int
	Name  string
	Draws []DrawCall
	// Origin is the top-left of a sub-image within its parent.
	Origin image.Point
}

// DrawCall records one DrawImage on a fake image.
type DrawCall struct {
	Src   *Image
	GeoM  GeoM
	Alpha float32
}

// NewImage creates a fake image of the given size.
func NewImage(name string, w, h int) *Image {
	return &Image{W: w, H: h, Name: name}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (int, int)        { return i.W, i.H }
func (i *Image) Fill(color.Color)        {}
func (i *Image) Dispose()                {}
func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{W: r.Dx(), H: r.Dy(), Name: i.Name, Origin: r.Min}
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{}
	if s, ok := src.(*Image); ok {
		call.Src = s
	}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok && g != nil {
			call.GeoM = *g
		}
		call.Alpha = opts.Alpha
	}
	i.Draws = append(i.Draws, call)
}

func (i *Image) DrawRectShader(int, int, render.Shader, *render.DrawRectShaderOptions) {}

// GeoM tracks translation and scale only, which is all the game uses.
type GeoM struct {
	TX, TY float64
	SX, SY float64
	scaled bool
}

func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }
func (g *GeoM) Reset()                   { *g = GeoM{} }

func (g *GeoM) Scale(sx, sy float64) {
	if !g.scaled {
		g.SX, g.SY, g.scaled = 1, 1, true
	}
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Text records a DrawText call.
type Text struct {
	Text string
	X, Y float64
}

// Renderer is a fake render.Renderer. Text draws are recorded.
type Renderer struct {
	mu    sync.Mutex
	Texts []Text
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage("", w, h) }

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage("generated", b.Dx(), b.Dy())
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color)     {}
func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color)            {}
func (r *Renderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {}

func (r *Renderer) DrawText(_ render.Image, text string, x, y float64, _ color.Color, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Texts = append(r.Texts, Text{Text: text, X: x, Y: y})
}

func (r *Renderer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * size * 0.5, size
}

func (r *Renderer) CompileShader([]byte) (render.Shader, error) {
	return nil, errors.New("shaders are not supported by the fake renderer")
}

// Loader is a fake render.ResourceLoader backed by a map of sizes.
// Paths that are absent fail to load.
type Loader struct {
	mu     sync.Mutex
	Images map[string]image.Point
	Calls  []string
	// Block, when set, is waited on before every load.
	Block chan struct{}
}

// NewLoader creates a loader that knows the given path sizes.
func NewLoader(images map[string]image.Point) *Loader {
	return &Loader{Images: images}
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	if l.Block != nil {
		<-l.Block
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = append(l.Calls, path)
	size, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	return NewImage(path, size.X, size.Y), nil
}

// CallCount returns how many loads were attempted for path.
func (l *Loader) CallCount(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.Calls {
		if c == path {
			n++
		}
	}
	return n
}

// Input is a fake render.InputManager driven by the test.
type Input struct {
	Pressed      map[render.Key]bool
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
	Cursor       image.Point
	MouseClicked bool
	Touches      []image.Point
	NewTouches   []image.Point
}

// NewInput creates an idle fake input.
func NewInput() *Input {
	return &Input{
		Pressed:      make(map[render.Key]bool),
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

// Press marks key as pressed this frame.
func (in *Input) Press(key render.Key) {
	if !in.Pressed[key] {
		in.JustPressed[key] = true
	}
	in.Pressed[key] = true
}

// Release marks key as released this frame.
func (in *Input) Release(key render.Key) {
	if in.Pressed[key] {
		in.JustReleased[key] = true
	}
	delete(in.Pressed, key)
}

// EndFrame clears the one-frame edges.
func (in *Input) EndFrame() {
	clear(in.JustPressed)
	clear(in.JustReleased)
	in.MouseClicked = false
	in.NewTouches = nil
}

func (in *Input) IsKeyJustPressed(key render.Key) bool  { return in.JustPressed[key] }
func (in *Input) IsKeyJustReleased(key render.Key) bool { return in.JustReleased[key] }
func (in *Input) GetCursorPosition() (int, int)         { return in.Cursor.X, in.Cursor.Y }

func (in *Input) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && in.MouseClicked
}

func (in *Input) TouchPositions() []image.Point            { return in.Touches }
func (in *Input) JustPressedTouchPositions() []image.Point { return in.NewTouches }
