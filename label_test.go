package typefaces

import "image/color"
import "testing"

func TestLabel(t *testing.T) {
	registry, _ := testRegistry()
	label := NewLabel(registry)
	if label.Resources() != Resources(registry) {
		t.Fatal("expected label to keep its resources")
	}
	if label.Font() != nil { t.Fatal("expected nil font on a fresh label") }
	if label.Text() != "" { t.Fatal("expected empty text on a fresh label") }

	label.SetText("mittens")
	if label.Text() != "mittens" { t.Fatal("unexpected text") }

	customFont := DefaultFont()
	label.SetFont(customFont)
	if label.Font() != customFont { t.Fatal("unexpected font") }

	label.SetSizePx(24)
	label.SetColor(color.RGBA{255, 0, 0, 255})

	face, err := label.currentFace()
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	faceAgain, err := label.currentFace()
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if face != faceAgain { t.Fatal("expected the face to be reused") }

	label.SetSizePx(32)
	faceBigger, err := label.currentFace()
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if faceBigger == face { t.Fatal("expected a rebuilt face after resizing") }
}

func TestLabelPanics(t *testing.T) {
	func() {
		defer func() {
			if recover() == nil { t.Fatal("expected panic on nil resources") }
		}()
		_ = NewLabel(nil)
	}()

	registry, _ := testRegistry()
	label := NewLabel(registry)
	defer func() {
		if recover() == nil { t.Fatal("expected panic on sizePx <= 0") }
	}()
	label.SetSizePx(0)
}
