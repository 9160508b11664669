package typefaces

import "io"
import "os"
import "path/filepath"
import "strconv"
import "sync"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/typefaces/font"

// A handy type alias for sfnt.Font so you don't need to import it
// when already working with typefaces.
type Font = sfnt.Font

// Targets are text display elements that a font can be applied to.
// They expose their associated [Resources] so [Loader.Apply]() can
// resolve ids against the right context, mirroring how UI elements
// carry their own context around. [Label] is the bundled
// implementation.
type Target interface {
	Resources() Resources
	SetFont(*Font)
}

// A Loader resolves resource ids to font handles and keeps every
// successfully constructed handle cached. Constructing a handle means
// reading and parsing a whole font file, which is expensive, so the
// cache makes every request after the first effectively free, and
// guarantees that all requests for the same id share a single handle.
//
// The cache only grows: entries are never evicted nor replaced, they
// simply live until the process ends. Fonts are small and apps bundle
// few of them, so this is the behavior you want.
//
// Loaders are concurrent-safe through a single mutex: all loads are
// serialized, even for different ids. Font loading is a rare, one-time
// event per resource, not a hot path worth finer locking.
type Loader struct {
	mutex sync.Mutex
	fonts map[ID]*Font
	scratchDir string
}

// Loader configuration options for [NewLoader]().
type LoaderOption func(*Loader)

// Sets the directory where font bytes are spilled while a handle is
// being constructed. The directory must exist and be writable. The
// default is [os.TempDir]().
func WithScratchDir(dir string) LoaderOption {
	return func(loader *Loader) { loader.scratchDir = dir }
}

// Hands the loader an explicit cache map. This allows pre-seeding
// handles or sharing one cache between loaders, but it is mostly
// useful for inspection during testing. The map must not be modified
// externally once the loader is in use.
func WithCache(cache map[ID]*Font) LoaderOption {
	return func(loader *Loader) { loader.fonts = cache }
}

// Creates a new font [Loader] with an empty cache.
func NewLoader(opts ...LoaderOption) *Loader {
	loader := &Loader {
		fonts: make(map[ID]*Font),
		scratchDir: os.TempDir(),
	}
	for _, opt := range opts { opt(loader) }
	return loader
}

// Returns the font handle for the given resource id, loading and
// caching it on first use. For any id whose resource loads correctly,
// every later call returns the identical handle, with no I/O involved.
//
// Get never fails from the caller's perspective:
//  - For [NoFont], the default handle is returned (never cached).
//  - For an id the given [Resources] can't resolve, the default handle
//    is returned without caching it, so the lookup is re-attempted on
//    the next call.
//  - If the resource is found but its bytes can't be copied or parsed,
//    the error is traced and the default handle is cached under the id,
//    so later calls don't retry the broken resource.
func (self *Loader) Get(res Resources, id ID) *Font {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if id == NoFont {
		tracer().Debugf("invalid font id")
		return DefaultFont()
	}

	cachedFont, found := self.fonts[id]
	if found { return cachedFont }

	newFont, opened := self.loadFont(res, id)
	if !opened { return DefaultFont() } // not cached, see doc comment
	self.fonts[id] = newFont
	return newFont
}

// Applies the font behind the given id to the given target, resolving
// it through the target's own [Resources]. The target is returned
// unchanged to promote chained calls:
//   screen.AddChild(loader.Apply(label, fontID))
func (self *Loader) Apply(target Target, id ID) Target {
	target.SetFont(self.Get(target.Resources(), id))
	return target
}

// Returns the current number of cached font handles.
func (self *Loader) NumCached() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.fonts)
}

// Constructs a handle for the resource behind the given id. The second
// return value reports whether the resource could be opened at all:
// when false, the result must not be cached. When true, the result is
// either the freshly parsed font or the default handle if some later
// I/O or parse step failed.
func (self *Loader) loadFont(res Resources, id ID) (*Font, bool) {
	stream, err := res.OpenResource(id)
	if err != nil {
		tracer().Debugf("font resource #%d could not be opened: %s", int(id), err.Error())
		return nil, false
	}

	newFont, err := self.parseStream(stream)
	closeErr := stream.Close()
	if err == nil && closeErr != nil { err = closeErr }
	if err != nil {
		tracer().Errorf("could not use custom font #%d, reverting to default: %s", int(id), err.Error())
		return DefaultFont(), true
	}

	name, nameErr := font.Name(newFont)
	if nameErr == nil {
		tracer().Debugf("font resource #%d loaded as '%s'", int(id), name)
	}
	return newFont, true
}

// Spills the stream to a uniquely named scratch file, parses the font
// from it and deletes the file again. Resource streams don't have to
// be seekable or sized, so handle construction always goes through a
// real file.
func (self *Loader) parseStream(stream io.Reader) (*Font, error) {
	path := self.scratchPath()
	file, err := os.Create(path)
	if err != nil { return nil, err }
	defer os.Remove(path)

	_, err = io.Copy(file, stream)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return font.ParseFile(path)
}

// Returns a fresh scratch file path. Uniqueness comes from the
// monotonic clock, which can't repeat across the serialized loads of
// a single process. The scratch directory is assumed private; other
// processes peeking between write and delete are not our problem.
func (self *Loader) scratchPath() string {
	name := "tmp" + strconv.FormatInt(monoNanoTime(), 10) + ".ttf"
	return filepath.Join(self.scratchDir, name)
}
