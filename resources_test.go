package typefaces

import "errors"
import "io"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/goregular"

func TestRegistryIDs(t *testing.T) {
	fsys := fstest.MapFS {
		"a.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"b.otf": &fstest.MapFile{ Data: goregular.TTF },
	}
	registry := NewRegistry(fsys)
	if registry.NumResources() != 0 { t.Fatal("really?") }

	idA := registry.Register("a.ttf")
	idB := registry.Register("b.otf")
	if idA != 1 { t.Fatalf("expected first id to be 1, got %d", idA) }
	if idB != 2 { t.Fatalf("expected second id to be 2, got %d", idB) }
	if registry.Register("a.ttf") != idA { t.Fatal("expected re-registration to keep the id") }
	if registry.NumResources() != 2 { t.Fatal("expected 2 resources") }

	path, found := registry.Path(idB)
	if !found || path != "b.otf" { t.Fatalf("unexpected path '%s'", path) }
	if _, found := registry.Path(NoFont); found { t.Fatal("id 0 must never resolve") }
	if _, found := registry.Path(ID(42)); found { t.Fatal("unexpected path for unassigned id") }

	if registry.Lookup("b.otf") != idB { t.Fatal("unexpected lookup result") }
	if registry.Lookup("nope.ttf") != NoFont { t.Fatal("expected NoFont for unknown path") }
}

func TestRegistryOpenResource(t *testing.T) {
	fsys := fstest.MapFS {
		"a.ttf": &fstest.MapFile{ Data: []byte("abc") },
	}
	registry := NewRegistry(fsys)
	idA := registry.Register("a.ttf")
	idGhost := registry.Register("ghost.ttf") // registered, but not in the fs

	stream, err := registry.OpenResource(idA)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	data, err := io.ReadAll(stream)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if string(data) != "abc" { t.Fatalf("unexpected data '%s'", string(data)) }
	if stream.Close() != nil { t.Fatal("unexpected close error") }

	_, err = registry.OpenResource(ID(123))
	if !errors.Is(err, ErrNotFound) { t.Fatal("expected ErrNotFound for unassigned id") }

	_, err = registry.OpenResource(idGhost)
	if !errors.Is(err, ErrNotFound) { t.Fatal("expected ErrNotFound for missing file") }
}

func TestRegisterAllFonts(t *testing.T) {
	fsys := fstest.MapFS {
		"fonts/zzz.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/aaa.otf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/readme.txt": &fstest.MapFile{ Data: []byte("not a font") },
		"fonts/sub/nested.ttf": &fstest.MapFile{ Data: goregular.TTF },
	}
	registry := NewRegistry(fsys)

	added, err := registry.RegisterAllFonts("fonts")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if added != 2 { t.Fatalf("expected 2 added fonts, got %d", added) }

	// lexical order means aaa.otf gets the first id
	if registry.Lookup("fonts/aaa.otf") != 1 { t.Fatal("unexpected id for aaa.otf") }
	if registry.Lookup("fonts/zzz.ttf") != 2 { t.Fatal("unexpected id for zzz.ttf") }
	if registry.Lookup("fonts/sub/nested.ttf") != NoFont {
		t.Fatal("walk must not recurse into subdirectories")
	}

	added, err = registry.RegisterAllFonts("fonts")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if added != 0 { t.Fatalf("expected 0 newly added fonts, got %d", added) }

	_, err = registry.RegisterAllFonts("missing-dir")
	if err == nil { t.Fatal("expected error for missing directory") }
}
