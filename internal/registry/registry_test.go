package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

func TestRegisterAndLookup(t *testing.T) {
	Register("test-dots", "two single cells", func() []tetris.Shape {
		return []tetris.Shape{tetris.ParseShape("#"), tetris.ParseShape("#")}
	})

	if !Exists("test-dots") {
		t.Fatal("registered catalog should exist")
	}
	shapes, err := Lookup("test-dots")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if len(shapes) != 2 {
		t.Errorf("Lookup() returned %d shapes, want 2", len(shapes))
	}

	var info *CatalogInfo
	for _, c := range List() {
		if c.Name == "test-dots" {
			info = &c
		}
	}
	if info == nil {
		t.Fatal("List() is missing the registered catalog")
	}
	if info.Shapes != 2 || info.Duplicates != 1 || info.Description != "two single cells" {
		t.Errorf("info = %+v", *info)
	}
}

func TestLookupUnknown(t *testing.T) {
	if Exists("no-such-catalog") {
		t.Fatal("unexpected catalog")
	}
	_, err := Lookup("no-such-catalog")
	if err == nil || !strings.Contains(err.Error(), "no-such-catalog") {
		t.Errorf("Lookup() error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() []tetris.Shape { return []tetris.Shape{tetris.ParseShape("#")} }
	Register("test-twice", "", f)

	defer func() {
		if recover() == nil {
			t.Error("registering the same name twice should panic")
		}
	}()
	Register("test-twice", "", f)
}

func TestListSorted(t *testing.T) {
	f := func() []tetris.Shape { return []tetris.Shape{tetris.ParseShape("#")} }
	Register("test-b", "", f)
	Register("test-a", "", f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
