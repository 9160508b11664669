package typefaces

import "errors"
import "io"
import "io/fs"
import "sort"
import "strconv"

import "github.com/tinne26/typefaces/font"

// Resource ids are small integer keys identifying bundled assets.
// Id 0 is reserved as the "no font" sentinel (see [NoFont]) and is
// never assigned to an actual resource.
type ID int

// The reserved id meaning "no resource". Passing it to [Loader.Get]()
// always results in the default font handle.
const NoFont ID = 0

// An error reported by [Resources] implementations when no resource
// exists for the requested id. Implementations may wrap it.
var ErrNotFound = errors.New("resource not found")

// Resources resolve resource ids to readable byte streams. This is
// the "application context" of the package: a [Loader] doesn't know
// where your font bytes live, it only asks a Resources for them.
//
// [Registry] is the bundled implementation, but any type that can map
// an id to a stream will do. Missing ids must be reported through an
// error matching [ErrNotFound] (errors.Is).
type Resources interface {
	OpenResource(id ID) (io.ReadCloser, error)
}

// A Registry assigns ids to the files of a filesystem, playing the
// role of a generated resource table. Ids are handed out densely
// starting at 1, in registration order, so they remain stable as long
// as registration order is stable.
//
// Registries are not concurrent-safe; register everything during
// initialization and only read afterwards.
type Registry struct {
	fsys fs.FS
	paths []string // paths[n] is the path for id n + 1
	ids map[string]ID
}

// Creates a new, empty [Registry] resolving paths against the given
// filesystem. Passing a nil filesystem will panic.
func NewRegistry(fsys fs.FS) *Registry {
	if fsys == nil { panic("nil filesystem") } // likely a dev mistake
	return &Registry {
		fsys: fsys,
		ids: make(map[string]ID),
	}
}

// Assigns an id to the given path and returns it. Registering the
// same path twice returns the originally assigned id. The path is
// not checked against the filesystem: resolution only happens when
// the resource is opened.
func (self *Registry) Register(path string) ID {
	id, alreadyRegistered := self.ids[path]
	if alreadyRegistered { return id }
	self.paths = append(self.paths, path)
	id = ID(len(self.paths))
	self.ids[path] = id
	return id
}

// Walks the given directory non-recursively and registers all the .ttf
// and .otf files in it, in lexical order. Returns the number of newly
// registered fonts and any error raised while reading the directory.
func (self *Registry) RegisterAllFonts(dirName string) (added int, err error) {
	entries, err := fs.ReadDir(self.fsys, dirName)
	if err != nil { return 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !font.IsFontPath(entry.Name()) { continue }
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := dirName + name
		_, alreadyRegistered := self.ids[path]
		if alreadyRegistered { continue }
		_ = self.Register(path)
		added += 1
	}
	return added, nil
}

// Returns the path registered under the given id, or false if the id
// was never assigned.
func (self *Registry) Path(id ID) (string, bool) {
	if id < 1 || int(id) > len(self.paths) { return "", false }
	return self.paths[id - 1], true
}

// Returns the id assigned to the given path, or [NoFont] if the path
// was never registered.
func (self *Registry) Lookup(path string) ID {
	id, found := self.ids[path]
	if !found { return NoFont }
	return id
}

// Returns the number of registered resources.
func (self *Registry) NumResources() int { return len(self.paths) }

// Implements [Resources]. Unassigned ids and paths missing from the
// underlying filesystem are both reported as [ErrNotFound].
func (self *Registry) OpenResource(id ID) (io.ReadCloser, error) {
	path, found := self.Path(id)
	if !found {
		return nil, wrapNotFound(id, ErrNotFound)
	}
	file, err := self.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrapNotFound(id, err)
		}
		return nil, err
	}
	return file, nil
}

type notFoundError struct {
	id ID
	cause error
}

func (self *notFoundError) Error() string {
	return "resource #" + strconv.Itoa(int(self.id)) + ": " + self.cause.Error()
}

func (self *notFoundError) Is(target error) bool { return target == ErrNotFound }
func (self *notFoundError) Unwrap() error { return self.cause }

func wrapNotFound(id ID, cause error) error {
	return &notFoundError{ id: id, cause: cause }
}
