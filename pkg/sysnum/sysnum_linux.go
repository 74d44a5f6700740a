// Package sysnum maps system call names to the platform's call numbers.
package sysnum

import "golang.org/x/sys/unix"

// numbers holds the calls available on every supported linux
// architecture. Legacy calls that only exist on some architectures are
// added by per-arch init functions.
var numbers = map[string]uintptr{
	"accept":          unix.SYS_ACCEPT,
	"accept4":         unix.SYS_ACCEPT4,
	"acct":            unix.SYS_ACCT,
	"bind":            unix.SYS_BIND,
	"brk":             unix.SYS_BRK,
	"capget":          unix.SYS_CAPGET,
	"capset":          unix.SYS_CAPSET,
	"chdir":           unix.SYS_CHDIR,
	"chroot":          unix.SYS_CHROOT,
	"clock_getres":    unix.SYS_CLOCK_GETRES,
	"clock_gettime":   unix.SYS_CLOCK_GETTIME,
	"clone":           unix.SYS_CLONE,
	"clone3":          unix.SYS_CLONE3,
	"close":           unix.SYS_CLOSE,
	"connect":         unix.SYS_CONNECT,
	"dup":             unix.SYS_DUP,
	"dup3":            unix.SYS_DUP3,
	"epoll_create1":   unix.SYS_EPOLL_CREATE1,
	"eventfd2":        unix.SYS_EVENTFD2,
	"execve":          unix.SYS_EXECVE,
	"execveat":        unix.SYS_EXECVEAT,
	"exit":            unix.SYS_EXIT,
	"exit_group":      unix.SYS_EXIT_GROUP,
	"faccessat":       unix.SYS_FACCESSAT,
	"fchdir":          unix.SYS_FCHDIR,
	"fchmod":          unix.SYS_FCHMOD,
	"fchmodat":        unix.SYS_FCHMODAT,
	"fchown":          unix.SYS_FCHOWN,
	"fchownat":        unix.SYS_FCHOWNAT,
	"fcntl":           unix.SYS_FCNTL,
	"fdatasync":       unix.SYS_FDATASYNC,
	"flock":           unix.SYS_FLOCK,
	"fstat":           unix.SYS_FSTAT,
	"fstatfs":         unix.SYS_FSTATFS,
	"fsync":           unix.SYS_FSYNC,
	"ftruncate":       unix.SYS_FTRUNCATE,
	"getcwd":          unix.SYS_GETCWD,
	"getdents64":      unix.SYS_GETDENTS64,
	"getegid":         unix.SYS_GETEGID,
	"geteuid":         unix.SYS_GETEUID,
	"getgid":          unix.SYS_GETGID,
	"getgroups":       unix.SYS_GETGROUPS,
	"getpeername":     unix.SYS_GETPEERNAME,
	"getpgid":         unix.SYS_GETPGID,
	"getpid":          unix.SYS_GETPID,
	"getppid":         unix.SYS_GETPPID,
	"getpriority":     unix.SYS_GETPRIORITY,
	"getrandom":       unix.SYS_GETRANDOM,
	"getrlimit":       unix.SYS_GETRLIMIT,
	"getrusage":       unix.SYS_GETRUSAGE,
	"getsid":          unix.SYS_GETSID,
	"getsockname":     unix.SYS_GETSOCKNAME,
	"getsockopt":      unix.SYS_GETSOCKOPT,
	"gettid":          unix.SYS_GETTID,
	"gettimeofday":    unix.SYS_GETTIMEOFDAY,
	"getuid":          unix.SYS_GETUID,
	"getxattr":        unix.SYS_GETXATTR,
	"inotify_init1":   unix.SYS_INOTIFY_INIT1,
	"ioctl":           unix.SYS_IOCTL,
	"kill":            unix.SYS_KILL,
	"linkat":          unix.SYS_LINKAT,
	"listen":          unix.SYS_LISTEN,
	"lseek":           unix.SYS_LSEEK,
	"madvise":         unix.SYS_MADVISE,
	"memfd_create":    unix.SYS_MEMFD_CREATE,
	"mkdirat":         unix.SYS_MKDIRAT,
	"mknodat":         unix.SYS_MKNODAT,
	"mlock":           unix.SYS_MLOCK,
	"mmap":            unix.SYS_MMAP,
	"mount":           unix.SYS_MOUNT,
	"mprotect":        unix.SYS_MPROTECT,
	"mremap":          unix.SYS_MREMAP,
	"msync":           unix.SYS_MSYNC,
	"munlock":         unix.SYS_MUNLOCK,
	"munmap":          unix.SYS_MUNMAP,
	"nanosleep":       unix.SYS_NANOSLEEP,
	"openat":          unix.SYS_OPENAT,
	"pipe2":           unix.SYS_PIPE2,
	"prctl":           unix.SYS_PRCTL,
	"pread64":         unix.SYS_PREAD64,
	"prlimit64":       unix.SYS_PRLIMIT64,
	"ptrace":          unix.SYS_PTRACE,
	"pwrite64":        unix.SYS_PWRITE64,
	"read":            unix.SYS_READ,
	"readahead":       unix.SYS_READAHEAD,
	"readlinkat":      unix.SYS_READLINKAT,
	"readv":           unix.SYS_READV,
	"recvfrom":        unix.SYS_RECVFROM,
	"recvmsg":         unix.SYS_RECVMSG,
	"renameat":        unix.SYS_RENAMEAT,
	"rt_sigreturn":    unix.SYS_RT_SIGRETURN,
	"sched_getparam":  unix.SYS_SCHED_GETPARAM,
	"sched_yield":     unix.SYS_SCHED_YIELD,
	"sendmsg":         unix.SYS_SENDMSG,
	"sendto":          unix.SYS_SENDTO,
	"setpriority":     unix.SYS_SETPRIORITY,
	"setrlimit":       unix.SYS_SETRLIMIT,
	"setsid":          unix.SYS_SETSID,
	"setsockopt":      unix.SYS_SETSOCKOPT,
	"setxattr":        unix.SYS_SETXATTR,
	"shutdown":        unix.SYS_SHUTDOWN,
	"sigaltstack":     unix.SYS_SIGALTSTACK,
	"socket":          unix.SYS_SOCKET,
	"socketpair":      unix.SYS_SOCKETPAIR,
	"statfs":          unix.SYS_STATFS,
	"symlinkat":       unix.SYS_SYMLINKAT,
	"sync":            unix.SYS_SYNC,
	"sysinfo":         unix.SYS_SYSINFO,
	"tgkill":          unix.SYS_TGKILL,
	"timerfd_create":  unix.SYS_TIMERFD_CREATE,
	"times":           unix.SYS_TIMES,
	"truncate":        unix.SYS_TRUNCATE,
	"umask":           unix.SYS_UMASK,
	"umount2":         unix.SYS_UMOUNT2,
	"uname":           unix.SYS_UNAME,
	"unlinkat":        unix.SYS_UNLINKAT,
	"unshare":         unix.SYS_UNSHARE,
	"utimensat":       unix.SYS_UTIMENSAT,
	"vhangup":         unix.SYS_VHANGUP,
	"wait4":           unix.SYS_WAIT4,
	"write":           unix.SYS_WRITE,
	"writev":          unix.SYS_WRITEV,
}

// Lookup resolves a call name to the platform's call number. The zero
// number is a real call on linux, so presence is reported separately.
func Lookup(name string) (uintptr, bool) {
	num, ok := numbers[name]
	return num, ok
}

// Names returns every call name the table knows about.
func Names() []string {
	names := make([]string, 0, len(numbers))
	for name := range numbers {
		names = append(names, name)
	}
	return names
}
