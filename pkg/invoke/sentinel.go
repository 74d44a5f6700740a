package invoke

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"al.essio.dev/pkg/shellescape"
	"golang.org/x/sys/unix"

	"github.com/sysdrill/sysdrill/pkg/catalog"
)

// scratch backs the pointer-valued sentinel arguments. It is allocated
// once per Invoker so the memory stays live across every invocation.
type scratch struct {
	// A real, readable and writable file. Its path feeds path/string
	// parameters, its descriptor feeds fd parameters.
	file *os.File
	// The file's path, NUL terminated.
	path []byte
	// General purpose buffer for buffer/pointer parameters.
	buf []byte
	// Zeroed sockaddr for sockaddr parameters.
	sa unix.RawSockaddrAny
}

func newScratch() (*scratch, error) {
	file, err := os.CreateTemp("", "sysdrill-scratch-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}

	path := make([]byte, len(file.Name())+1)
	copy(path, file.Name())

	return &scratch{
		file: file,
		path: path,
		buf:  make([]byte, 4096),
	}, nil
}

func (s *scratch) Close() error {
	name := s.file.Name()
	return errors.Join(s.file.Close(), os.Remove(name))
}

// arg is one synthesized argument. Pointer arguments are held as
// unsafe.Pointer, not uintptr, until the call instruction itself, so the
// referenced scratch memory stays visible to the garbage collector.
type arg struct {
	word uintptr
	ptr  unsafe.Pointer
}

func (a arg) value() uintptr {
	if a.ptr != nil {
		return uintptr(a.ptr)
	}
	return a.word
}

// sentinels maps every supported parameter kind to the constructor of
// its fixed argument value. The map is the closed set of kinds the
// invoker understands; descriptors using anything else are rejected with
// ErrUnknownKind. The values carry no meaning beyond being valid enough
// to trigger the call.
var sentinels = map[catalog.ParamKind]func(*scratch) arg{
	catalog.KindInt:  func(*scratch) arg { return arg{} },
	catalog.KindUint: func(*scratch) arg { return arg{} },
	catalog.KindSize: func(*scratch) arg { return arg{} },
	catalog.KindFd: func(s *scratch) arg {
		return arg{word: s.file.Fd()}
	},
	catalog.KindPath: func(s *scratch) arg {
		return arg{ptr: unsafe.Pointer(&s.path[0])}
	},
	catalog.KindString: func(s *scratch) arg {
		return arg{ptr: unsafe.Pointer(&s.path[0])}
	},
	catalog.KindBuffer: func(s *scratch) arg {
		return arg{ptr: unsafe.Pointer(&s.buf[0])}
	},
	catalog.KindPointer: func(s *scratch) arg {
		return arg{ptr: unsafe.Pointer(&s.buf[0])}
	},
	catalog.KindSockaddr: func(s *scratch) arg {
		return arg{ptr: unsafe.Pointer(&s.sa)}
	},
}

// formatArgs renders the synthesized arguments for trace output, one
// representation per parameter kind.
func (inv *Invoker) formatArgs(d catalog.Descriptor, args []arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		switch d.Params[i] {
		case catalog.KindPath, catalog.KindString:
			parts[i] = shellescape.Quote(inv.scratch.file.Name())
		case catalog.KindInt, catalog.KindUint, catalog.KindSize, catalog.KindFd:
			parts[i] = fmt.Sprintf("%d", int(a.word))
		default:
			parts[i] = fmt.Sprintf("%#x", a.value())
		}
	}
	return strings.Join(parts, ", ")
}
