package typefaces

import "image/color"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"

// A Label is a minimal text display element: a string, a font, a size
// and a color. It exists so [Loader.Apply]() has something concrete to
// apply fonts to, and so the examples can show styled text without
// pulling in a full UI framework.
//
// Labels are created against the [Resources] of their app, the same way
// UI widgets are created against a context. They are not concurrent-safe.
type Label struct {
	res Resources
	text string
	labelFont *Font
	sizePx int
	textColor color.Color

	// face cache, rebuilt when font or size change
	face font.Face
	faceFont *Font
	faceSizePx int
}

// Creates a new empty [Label] associated to the given [Resources].
// Passing nil resources will panic. The initial text is empty, the
// size is 16px and the color is black; the font starts unset, which
// draws with [DefaultFont]().
func NewLabel(res Resources) *Label {
	if res == nil { panic("nil resources") } // likely a dev mistake
	return &Label {
		res: res,
		sizePx: 16,
		textColor: color.RGBA{0, 0, 0, 255},
	}
}

// Returns the [Resources] the label was created against.
func (self *Label) Resources() Resources { return self.res }

// Sets the label's font handle. Implements [Target]. You rarely call
// this directly; prefer [Loader.Apply]().
func (self *Label) SetFont(labelFont *Font) { self.labelFont = labelFont }

// Returns the label's current font handle, which may be nil if no
// font has been applied yet.
func (self *Label) Font() *Font { return self.labelFont }

// Sets the text displayed by the label.
func (self *Label) SetText(text string) { self.text = text }

// Returns the text displayed by the label.
func (self *Label) Text() string { return self.text }

// Sets the text size, in pixels. Non-positive sizes will panic.
func (self *Label) SetSizePx(sizePx int) {
	if sizePx <= 0 { panic("sizePx <= 0") }
	self.sizePx = sizePx
}

// Sets the text color.
func (self *Label) SetColor(textColor color.Color) { self.textColor = textColor }

// Returns the face for the label's current font and size, rebuilding
// it only when either changed since the last draw.
func (self *Label) currentFace() (font.Face, error) {
	activeFont := self.labelFont
	if activeFont == nil { activeFont = DefaultFont() }
	if self.face != nil && self.faceFont == activeFont && self.faceSizePx == self.sizePx {
		return self.face, nil
	}

	face, err := opentype.NewFace(activeFont, &opentype.FaceOptions {
		Size: float64(self.sizePx),
		DPI: 72,
		Hinting: font.HintingFull,
	})
	if err != nil { return nil, err }
	self.face = face
	self.faceFont = activeFont
	self.faceSizePx = self.sizePx
	return face, nil
}
