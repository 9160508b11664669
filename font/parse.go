package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Parses a font from its raw bytes, like [sfnt.Parse](). The bytes
// must not be modified while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func Parse(fontBytes []byte) (*sfnt.Font, error) {
	return sfnt.Parse(fontBytes)
}

// Attempts to parse the font file at the given path. Supported
// formats are .ttf and .otf.
func ParseFile(path string) (*sfnt.Font, error) {
	if !IsFontPath(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFile](), but for filesystems. This is mainly provided
// to support [embed.FS] and embedded fonts.
func ParseFS(filesys fs.FS, path string) (*sfnt.Font, error) {
	if !IsFontPath(path) {
		return nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Whether the path ends in .ttf or .otf.
func IsFontPath(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return Parse(fontBytes)
}
