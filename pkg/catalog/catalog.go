package catalog

import (
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParamKind names the kind of one system call parameter, as classified by
// the catalog generator.
type ParamKind string

const (
	KindInt      ParamKind = "int"
	KindUint     ParamKind = "uint"
	KindSize     ParamKind = "size"
	KindFd       ParamKind = "fd"
	KindPath     ParamKind = "path"
	KindString   ParamKind = "string"
	KindBuffer   ParamKind = "buffer"
	KindPointer  ParamKind = "pointer"
	KindSockaddr ParamKind = "sockaddr"
)

var paramKinds = map[ParamKind]bool{
	KindInt:      true,
	KindUint:     true,
	KindSize:     true,
	KindFd:       true,
	KindPath:     true,
	KindString:   true,
	KindBuffer:   true,
	KindPointer:  true,
	KindSockaddr: true,
}

// Valid reports whether k is one of the known parameter kinds.
func (k ParamKind) Valid() bool {
	return paramKinds[k]
}

// Descriptor describes one system call's signature: its name, optionally
// its call number, and the kinds of its parameters. Descriptors are
// produced by an external generator and read-only here.
type Descriptor struct {
	Name   string      `json:"name"`
	Number uint64      `json:"number,omitempty"`
	Params []ParamKind `json:"params"`
}

// Signature returns the descriptor formatted as name(kind, kind, ...).
func (d Descriptor) Signature() string {
	kinds := make([]string, len(d.Params))
	for i, p := range d.Params {
		kinds[i] = string(p)
	}
	return fmt.Sprintf("%s(%s)", d.Name, strings.Join(kinds, ", "))
}

// Catalog maps call name to descriptor. It is loaded wholesale at startup
// and never mutated afterwards.
type Catalog map[string]Descriptor

// Names returns all call names in the catalog, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a serialized catalog from path. The generator's native
// format is a gob stream; files ending in .json are decoded as JSON
// instead. Any read or decode failure is returned as-is: the caller
// treats it as fatal.
func Load(path string) (c Catalog, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	if filepath.Ext(path) == ".json" {
		if err := json.NewDecoder(file).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	} else {
		if err := gob.NewDecoder(file).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	}

	// Some generators only name calls through the map keys.
	for name, d := range c {
		if d.Name == "" {
			d.Name = name
			c[name] = d
		}
	}

	return c, nil
}
