package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// CheckerSize is the edge length of one checker square in a placeholder.
const CheckerSize = 32

// Default sizes for generated files.
var (
	BackgroundSize = image.Pt(2400, 1200)
	SpriteSize     = image.Pt(256, 256)
)

// ColorPalette defines the placeholder colors.
var ColorPalette = struct {
	Missing    color.RGBA
	MissingAlt color.RGBA
	Border     color.RGBA
	Background color.RGBA
	Avatar     color.RGBA
}{
	Missing:    color.RGBA{255, 0, 220, 255}, // Loud magenta
	MissingAlt: color.RGBA{20, 20, 20, 255},
	Border:     color.RGBA{255, 255, 255, 255},
	Background: color.RGBA{40, 36, 48, 255},
	Avatar:     color.RGBA{140, 140, 150, 255},
}

// Missing builds the visibly marked image used when an asset fails to load:
// a magenta and black checkerboard with a white border and a diagonal cross.
func Missing(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		width, height = CheckerSize*2, CheckerSize*2
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y += CheckerSize {
		for x := 0; x < width; x += CheckerSize {
			col := ColorPalette.Missing
			if (x/CheckerSize+y/CheckerSize)%2 == 1 {
				col = ColorPalette.MissingAlt
			}
			r := image.Rect(x, y, x+CheckerSize, y+CheckerSize).Intersect(img.Bounds())
			draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
		}
	}

	drawBorder(img, ColorPalette.Border, 3)
	drawCross(img, ColorPalette.Border)
	return img
}

// Background builds a flat placeholder for a scene background with a floor
// band so the ground line is visible.
func Background(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.Background}, image.Point{}, draw.Src)
	floor := image.Rect(0, height*9/10, width, height)
	draw.Draw(img, floor, &image.Uniform{Darken(ColorPalette.Background, 0.6)}, image.Point{}, draw.Src)
	drawBorder(img, Lighten(ColorPalette.Background, 0.3), 4)
	return img
}

// Sprite builds a placeholder for a UI or content image.
func Sprite(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.Avatar}, image.Point{}, draw.Src)
	drawBorder(img, Darken(ColorPalette.Avatar, 0.5), 2)
	return img
}

func drawBorder(img *image.RGBA, col color.RGBA, width int) {
	b := img.Bounds()
	for i := 0; i < width; i++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, b.Min.Y+i, col)
			img.Set(x, b.Max.Y-1-i, col)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.Set(b.Min.X+i, y, col)
			img.Set(b.Max.X-1-i, y, col)
		}
	}
}

func drawCross(img *image.RGBA, col color.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	steps := max(w, h)
	for i := 0; i < steps; i++ {
		x := i * w / steps
		y := i * h / steps
		img.Set(x, y, col)
		img.Set(w-1-x, y, col)
	}
}

// SizeFor picks a placeholder size from the asset path.
func SizeFor(path string) image.Point {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return BackgroundSize
	default:
		return SpriteSize
	}
}

// Save writes img to path, encoding by extension (PNG unless .jpg/.jpeg).
func Save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(file, img, &jpeg.Options{Quality: 85})
	default:
		return png.Encode(file, img)
	}
}

// GenerateMissing writes a placeholder for every key that does not exist
// under root. Existing files are never touched. It returns the keys it
// generated.
func GenerateMissing(root string, keys []string) ([]string, error) {
	var generated []string
	for _, key := range keys {
		path := filepath.Join(root, key)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return generated, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		size := SizeFor(key)
		var img image.Image
		if size == BackgroundSize {
			img = Background(size.X, size.Y)
		} else {
			img = Sprite(size.X, size.Y)
		}
		if err := Save(img, path); err != nil {
			return generated, fmt.Errorf("failed to save placeholder %s: %w", key, err)
		}
		log.Printf("Generated placeholder %s", key)
		generated = append(generated, key)
	}
	return generated, nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
