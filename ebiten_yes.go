//go:build !gtxt

package typefaces

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/text"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// Draws the label's text on the given target, with (x, y) being the
// baseline origin of the first line. Face construction errors are
// traced and the draw is skipped; a label never brings a frame down.
func (self *Label) Draw(target TargetImage, x, y int) {
	if self.text == "" { return }
	face, err := self.currentFace()
	if err != nil {
		tracer().Errorf("label can't build a face for its font: %s", err.Error())
		return
	}
	text.Draw(target, self.text, face, x, y, self.textColor)
}
