package material

import (
	"errors"
	"testing"

	"github.com/Faultbox/deskscene/pkg/math"
)

func TestLibraryFind(t *testing.T) {
	lib := NewLibrary()
	shiny := Material{Tag: "shiny", Diffuse: math.Vec3{X: 1, Y: 1, Z: 1}, Specular: math.Vec3{X: 1, Y: 1, Z: 1}, Shininess: 128}
	if err := lib.Add(shiny); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := lib.Find("shiny")
	if !ok {
		t.Fatal("expected to find shiny")
	}
	if got != shiny {
		t.Errorf("Find = %+v, want %+v", got, shiny)
	}

	if _, ok := lib.Find("missing"); ok {
		t.Error("expected missing tag to be absent")
	}
}

func TestLibraryRejectsDuplicates(t *testing.T) {
	lib := NewLibrary()
	if err := lib.Add(Material{Tag: "matte", Shininess: 16}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	err := lib.Add(Material{Tag: "matte", Shininess: 4})
	if !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("expected ErrDuplicateTag, got %v", err)
	}

	// First registration wins and the list did not grow
	got, _ := lib.Find("matte")
	if got.Shininess != 16 {
		t.Errorf("expected original preset to survive, got shininess %f", got.Shininess)
	}
	if lib.Len() != 1 {
		t.Errorf("expected 1 preset, got %d", lib.Len())
	}
}

func TestLibraryAllKeepsOrder(t *testing.T) {
	lib := NewLibrary()
	for _, tag := range []string{"a", "b", "c"} {
		if err := lib.Add(Material{Tag: tag}); err != nil {
			t.Fatalf("Add(%s): %v", tag, err)
		}
	}

	all := lib.All()
	for i, tag := range []string{"a", "b", "c"} {
		if all[i].Tag != tag {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Tag, tag)
		}
	}

	// Mutating the copy leaves the library intact
	all[0].Tag = "z"
	if _, ok := lib.Find("a"); !ok {
		t.Error("All should return a copy")
	}
}
