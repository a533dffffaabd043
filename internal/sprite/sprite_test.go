package sprite

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/raccoon/internal/render/rendertest"
)

const sheetJSON = `{
	"name": "raccoon",
	"image_path": "assets/raccoon_sheet.png",
	"frame_width": 128,
	"frame_height": 96,
	"animations": {
		"idle": {"row": 0, "frames": 4, "fps": 4},
		"walking": {"row": 1, "start": 2, "frames": 6, "fps": 12}
	}
}`

func TestSheetConfigParsing(t *testing.T) {
	cfg, err := ParseSheetConfig([]byte(sheetJSON))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if cfg.Name != "raccoon" {
		t.Errorf("Expected name 'raccoon', got '%s'", cfg.Name)
	}
	if cfg.FrameWidth != 128 || cfg.FrameHeight != 96 {
		t.Errorf("Expected 128x96 frames, got %dx%d", cfg.FrameWidth, cfg.FrameHeight)
	}

	walk, ok := cfg.Animations["walking"]
	if !ok {
		t.Fatal("Expected walking animation")
	}
	if walk.Row != 1 || walk.Start != 2 || walk.Frames != 6 {
		t.Errorf("Unexpected walking definition: %+v", walk)
	}
}

func TestSheetConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"zero frame size", `{"image_path": "a.png", "frame_width": 0, "frame_height": 10, "animations": {"idle": {"frames": 1}}}`},
		{"missing image", `{"frame_width": 10, "frame_height": 10, "animations": {"idle": {"frames": 1}}}`},
		{"no animations", `{"image_path": "a.png", "frame_width": 10, "frame_height": 10}`},
		{"empty animation", `{"image_path": "a.png", "frame_width": 10, "frame_height": 10, "animations": {"idle": {"frames": 0}}}`},
		{"bad json", `{"name": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSheetConfig([]byte(tt.json)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadSheetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.json")
	if err := os.WriteFile(path, []byte(sheetJSON), 0644); err != nil {
		t.Fatalf("Failed to write sheet: %v", err)
	}
	if _, err := LoadSheetConfig(path); err != nil {
		t.Errorf("Expected sheet to load, got %v", err)
	}
	if _, err := LoadSheetConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFrameRects(t *testing.T) {
	cfg, _ := ParseSheetConfig([]byte(sheetJSON))
	sheet := NewSheet(cfg, rendertest.NewImage("sheet", 1024, 192))

	img, ok := sheet.Frame("walking", 1)
	if !ok {
		t.Fatal("Expected frame")
	}
	f := img.(*rendertest.Image)
	if f.Origin != (image.Point{X: 384, Y: 96}) || f.W != 128 || f.H != 96 {
		t.Errorf("Expected 128x96 frame at (384,96), got %dx%d at %v", f.W, f.H, f.Origin)
	}

	// Frames wrap around the run
	img, _ = sheet.Frame("idle", 5)
	if got := img.(*rendertest.Image).Origin; got != (image.Point{X: 128}) {
		t.Errorf("Expected wrapped frame at x=128, got %v", got)
	}

	if _, ok := sheet.Frame("jumping", 0); ok {
		t.Error("Expected unknown animation to fail")
	}
}

func TestFrameOutsideImage(t *testing.T) {
	cfg, _ := ParseSheetConfig([]byte(sheetJSON))
	sheet := NewSheet(cfg, rendertest.NewImage("small", 256, 96))
	if _, ok := sheet.Frame("walking", 0); ok {
		t.Error("Expected frame outside the image to fail")
	}
}

func TestAnimatorPlayback(t *testing.T) {
	cfg, _ := ParseSheetConfig([]byte(sheetJSON))
	a := NewAnimator(NewSheet(cfg, rendertest.NewImage("sheet", 1024, 192)), "idle")

	a.Update(0.6)
	if got := a.FrameIndex(); got != 2 {
		t.Errorf("Expected idle frame 2 after 0.6s at 4fps, got %d", got)
	}

	a.Play("idle")
	if got := a.FrameIndex(); got != 2 {
		t.Errorf("Expected replaying idle to keep progress, got %d", got)
	}

	a.Play("walking")
	if a.Current() != "walking" || a.FrameIndex() != 0 {
		t.Errorf("Expected walking from frame 0, got %s %d", a.Current(), a.FrameIndex())
	}
	a.Update(0.55)
	if got := a.FrameIndex(); got != 0 {
		t.Errorf("Expected walking to wrap to frame 0 after 6 frames, got %d", got)
	}
}

func TestSingleFrame(t *testing.T) {
	sheet := SingleFrame(rendertest.NewImage("fallback", 64, 64), "idle", "walking")
	a := NewAnimator(sheet, "walking")
	a.Update(3)
	img, ok := a.Frame()
	if !ok {
		t.Fatal("Expected a frame")
	}
	if w, h := img.Size(); w != 64 || h != 64 {
		t.Errorf("Expected whole image, got %dx%d", w, h)
	}
}
