package typefaces

import "sync"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/typefaces/font"

var defaultFontMutex sync.Mutex
var defaultFont *Font

// Returns the standard fallback font handle, parsed lazily from the
// embedded Go Regular font. Every failing [Loader.Get]() call resolves
// to this same handle, so the default is itself reference-stable: you
// can compare against it to detect fallbacks.
func DefaultFont() *Font {
	defaultFontMutex.Lock()
	defer defaultFontMutex.Unlock()
	if defaultFont == nil {
		parsedFont, err := font.Parse(goregular.TTF)
		if err != nil { panic(err) } // the embedded font can't be invalid
		defaultFont = parsedFont
	}
	return defaultFont
}
