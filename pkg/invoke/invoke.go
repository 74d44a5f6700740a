// Package invoke issues system calls described by catalog descriptors,
// with fixed sentinel arguments, so that an external trace tool can
// observe each call and its outcome.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fornellas/resonance/log"
	"golang.org/x/sys/unix"

	"github.com/sysdrill/sysdrill/pkg/catalog"
	"github.com/sysdrill/sysdrill/pkg/sysnum"
)

// A call can take at most six register arguments on linux.
const maxParams = 6

var (
	// ErrUnknownCall means the call name is neither numbered in the
	// descriptor nor present in the number table.
	ErrUnknownCall = errors.New("unknown call")
	// ErrUnknownKind means a descriptor declares a parameter kind this
	// invoker has no sentinel constructor for.
	ErrUnknownKind = errors.New("unknown parameter kind")
	// ErrTooManyParams means a descriptor declares more parameters than
	// the calling convention carries.
	ErrTooManyParams = errors.New("more than six parameters")
)

// Config configures an Invoker. It replaces the generator-era global
// debug toggles: everything the invoker's behavior depends on is passed
// in here.
type Config struct {
	// Trace prints each call with its arguments to Out before
	// invocation, and its result after.
	Trace bool
	// Out receives trace output. Defaults to stdout.
	Out io.Writer
	// Lookup resolves a call name to the platform call number when the
	// descriptor carries no number. Defaults to sysnum.Lookup.
	Lookup func(name string) (uintptr, bool)
}

// Result is the outcome of one invocation. A nonzero Errno is the datum
// being observed, not a harness error.
type Result struct {
	Ret   uintptr
	Errno unix.Errno
}

func (r Result) String() string {
	if r.Errno != 0 {
		name := unix.ErrnoName(r.Errno)
		if name == "" {
			name = fmt.Sprintf("errno %d", int(r.Errno))
		}
		return fmt.Sprintf("-1 %s (%s)", name, r.Errno.Error())
	}
	return fmt.Sprintf("%d", int(r.Ret))
}

// Invoker issues catalog calls with sentinel arguments. The scratch
// resources backing pointer arguments live for the Invoker's lifetime;
// release them with Close.
type Invoker struct {
	cfg     Config
	scratch *scratch
}

// New creates an Invoker, allocating its scratch resources.
func New(cfg Config) (*Invoker, error) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Lookup == nil {
		cfg.Lookup = sysnum.Lookup
	}

	s, err := newScratch()
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch resources: %w", err)
	}

	return &Invoker{
		cfg:     cfg,
		scratch: s,
	}, nil
}

// Close releases the scratch resources.
func (inv *Invoker) Close() error {
	return inv.scratch.Close()
}

// number resolves the call number for a descriptor. Descriptor numbers
// are honored only when nonzero; zero is a real call number on some
// architectures, and catalogs wanting it rely on the name table.
func (inv *Invoker) number(d catalog.Descriptor) (uintptr, error) {
	if d.Number != 0 {
		return uintptr(d.Number), nil
	}
	num, ok := inv.cfg.Lookup(d.Name)
	if !ok {
		return 0, fmt.Errorf("%s: %w", d.Name, ErrUnknownCall)
	}
	return num, nil
}

// buildArgs synthesizes one argument per declared parameter, in
// declaration order.
func (inv *Invoker) buildArgs(d catalog.Descriptor) ([]arg, error) {
	if len(d.Params) > maxParams {
		return nil, fmt.Errorf("%s: %d: %w", d.Name, len(d.Params), ErrTooManyParams)
	}

	args := make([]arg, 0, maxParams)
	for _, kind := range d.Params {
		construct, ok := sentinels[kind]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", d.Name, kind, ErrUnknownKind)
		}
		args = append(args, construct(inv.scratch))
	}
	return args, nil
}

// Invoke issues the call described by d. The returned error covers only
// descriptors that cannot be issued at all (ErrUnknownCall,
// ErrUnknownKind, ErrTooManyParams); a failing call is reported through
// Result.Errno and is not an error.
func (inv *Invoker) Invoke(ctx context.Context, d catalog.Descriptor) (Result, error) {
	logger := log.MustLogger(ctx)

	num, err := inv.number(d)
	if err != nil {
		return Result{}, err
	}

	args, err := inv.buildArgs(d)
	if err != nil {
		return Result{}, err
	}

	if inv.cfg.Trace {
		fmt.Fprintf(inv.cfg.Out, "%s(%s)", d.Name, inv.formatArgs(d, args))
	}
	logger.Debug("invoking", "call", d.Name, "number", num, "args", len(args))

	var full [maxParams]uintptr
	for i, a := range args {
		full[i] = a.value()
	}
	ret, _, errno := unix.Syscall6(num, full[0], full[1], full[2], full[3], full[4], full[5])
	runtime.KeepAlive(inv.scratch)

	result := Result{Ret: ret, Errno: errno}
	if inv.cfg.Trace {
		fmt.Fprintf(inv.cfg.Out, " = %s\n", result)
	}

	return result, nil
}
