package sysnum

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		name string
		want uintptr
	}{
		{"read", unix.SYS_READ},
		{"write", unix.SYS_WRITE},
		{"getpid", unix.SYS_GETPID},
		{"openat", unix.SYS_OPENAT},
	}
	for _, tc := range testCases {
		got, ok := Lookup(tc.name)
		if !ok {
			t.Errorf("Lookup(%q): not found", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("Lookup(%q): got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("not_a_call"); ok {
		t.Errorf("Lookup: expected not found")
	}
}

func TestNamesResolve(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("Names: empty table")
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q): not found", name)
		}
	}
}
