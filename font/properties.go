package font

import "errors"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"

// Error returned by property queries when the property is missing or
// empty in the font's naming table.
var ErrPropertyNotFound = errors.New("font property not found or empty")

// We keep a single sfnt.Buffer around for property queries. The buffer
// can't be used concurrently, so it's only handed out when free; other
// callers simply allocate. A pool would be overkill for how rarely
// properties are queried.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested naming-table property of the given font.
// If the property is missing, [ErrPropertyNotFound] will be returned.
func Property(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrPropertyNotFound }
	return str, err
}

// Returns the full name of the given font (e.g. "Roboto Bold").
func Name(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "Roboto").
func Family(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of:
//  - Regular, Italic, Bold, Bold Italic
func Subfamily(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDSubfamily)
}

// Returns the runes in the given text that the font can't represent.
// Repeated runes in the input can appear repeated in the result too.
// Useful to sanity check that a loaded font covers the text your app
// actually displays.
func MissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	missing := make([]rune, 0)
	buffer := getSfntBuffer()
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil {
			releaseSfntBuffer(buffer)
			return nil, err
		}
		if index == 0 { missing = append(missing, codePoint) }
	}
	releaseSfntBuffer(buffer)
	return missing, nil
}
