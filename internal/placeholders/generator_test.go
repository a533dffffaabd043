package placeholders

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMissingIsMarked(t *testing.T) {
	img := Missing(100, 60)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Fatalf("Expected 100x60, got %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != ColorPalette.Border {
		t.Errorf("Expected border at corner, got %v", got)
	}
	if got := img.RGBAAt(10, 20); got != ColorPalette.Missing {
		t.Errorf("Expected magenta checker, got %v", got)
	}
	if got := img.RGBAAt(40, 20); got != ColorPalette.MissingAlt {
		t.Errorf("Expected dark checker, got %v", got)
	}
}

func TestMissingZeroSizeFallsBack(t *testing.T) {
	img := Missing(0, 0)
	if img.Bounds().Dx() != CheckerSize*2 {
		t.Errorf("Expected default size %d, got %d", CheckerSize*2, img.Bounds().Dx())
	}
}

func TestGenerateMissingSkipsExisting(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "assets", "idle.png")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	generated, err := GenerateMissing(root, []string{"assets/idle.png", "assets/arrow.png"})
	if err != nil {
		t.Fatalf("GenerateMissing failed: %v", err)
	}
	if len(generated) != 1 || generated[0] != "assets/arrow.png" {
		t.Errorf("Expected only arrow.png generated, got %v", generated)
	}

	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "keep" {
		t.Errorf("Expected existing file untouched, got %q (%v)", data, err)
	}
	if _, err := os.Stat(filepath.Join(root, "assets", "arrow.png")); err != nil {
		t.Errorf("Expected arrow.png on disk: %v", err)
	}
}

func TestSizeFor(t *testing.T) {
	if SizeFor("assets/outside_house.jpg") != BackgroundSize {
		t.Error("Expected jpg to use background size")
	}
	if SizeFor("assets/arrow.png") != SpriteSize {
		t.Error("Expected png to use sprite size")
	}
}
