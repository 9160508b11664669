//go:build gtxt

package typefaces

import "image"
import "image/draw"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

// Alias to allow compiling the package without Ebitengine (gtxt version).
type TargetImage = draw.Image

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

	drawer := font.Drawer {
		Dst: target,
		Src: image.NewUniform(self.textColor),
		Face: face,
		Dot: fixed.P(x, y),
	}
	drawer.DrawString(self.text)
}
