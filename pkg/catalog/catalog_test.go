package catalog

import (
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeGobCatalog(t *testing.T, c Catalog) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}
	if err := gob.NewEncoder(file).Encode(c); err != nil {
		t.Fatalf("failed to encode catalog: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("failed to close catalog file: %v", err)
	}
	return path
}

func TestLoadGob(t *testing.T) {
	want := Catalog{
		"getpid": {Name: "getpid"},
		"open":   {Name: "open", Params: []ParamKind{KindPath, KindInt, KindUint}},
		"write":  {Name: "write", Params: []ParamKind{KindFd, KindBuffer, KindSize}},
	}

	got, err := Load(writeGobCatalog(t, want))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load: got %v, want %v", got, want)
	}
}

func TestLoadGobKeySet(t *testing.T) {
	c := Catalog{
		"close":  {Name: "close", Params: []ParamKind{KindFd}},
		"getpid": {Name: "getpid"},
		"getuid": {Name: "getuid"},
	}

	got, err := Load(writeGobCatalog(t, c))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"close", "getpid", "getuid"}
	if !reflect.DeepEqual(got.Names(), want) {
		t.Errorf("Names: got %v, want %v", got.Names(), want)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"getpid": {"name": "getpid", "params": []},
		"getuid": {"params": []},
		"openat": {"name": "openat", "number": 257, "params": ["fd", "path", "int", "uint"]}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	openat, ok := got["openat"]
	if !ok {
		t.Fatalf("Load: missing openat")
	}
	if openat.Number != 257 {
		t.Errorf("openat number: got %d, want 257", openat.Number)
	}
	wantParams := []ParamKind{KindFd, KindPath, KindInt, KindUint}
	if !reflect.DeepEqual(openat.Params, wantParams) {
		t.Errorf("openat params: got %v, want %v", openat.Params, wantParams)
	}
	if len(got["getpid"].Params) != 0 {
		t.Errorf("getpid params: got %v, want none", got["getpid"].Params)
	}
	if got["getuid"].Name != "getuid" {
		t.Errorf("getuid name: got %q, want filled from key", got["getuid"].Name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-catalog"))
	if err == nil {
		t.Errorf("Load: expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load: got %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog")
	if err := os.WriteFile(path, []byte("not a gob stream"), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load: expected error for corrupt file")
	}
}

func TestParamKindValid(t *testing.T) {
	for kind := range paramKinds {
		if !kind.Valid() {
			t.Errorf("%q: expected valid", kind)
		}
	}
	if ParamKind("banana").Valid() {
		t.Errorf("banana: expected invalid")
	}
}

func TestSignature(t *testing.T) {
	testCases := []struct {
		descriptor Descriptor
		want       string
	}{
		{Descriptor{Name: "getpid"}, "getpid()"},
		{Descriptor{Name: "close", Params: []ParamKind{KindFd}}, "close(fd)"},
		{
			Descriptor{Name: "write", Params: []ParamKind{KindFd, KindBuffer, KindSize}},
			"write(fd, buffer, size)",
		},
	}
	for _, tc := range testCases {
		if got := tc.descriptor.Signature(); got != tc.want {
			t.Errorf("Signature: got %q, want %q", got, tc.want)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	c := Catalog{
		"write":  {Name: "write"},
		"close":  {Name: "close"},
		"getpid": {Name: "getpid"},
	}
	names := c.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names: got %v, want sorted", names)
	}
	if len(names) != len(c) {
		t.Errorf("Names: got %d names, want %d", len(names), len(c))
	}
}
