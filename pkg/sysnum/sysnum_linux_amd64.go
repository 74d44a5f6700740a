package sysnum

import "golang.org/x/sys/unix"

func init() {
	numbers["access"] = unix.SYS_ACCESS
	numbers["alarm"] = unix.SYS_ALARM
	numbers["arch_prctl"] = unix.SYS_ARCH_PRCTL
	numbers["chmod"] = unix.SYS_CHMOD
	numbers["chown"] = unix.SYS_CHOWN
	numbers["creat"] = unix.SYS_CREAT
	numbers["dup2"] = unix.SYS_DUP2
	numbers["epoll_create"] = unix.SYS_EPOLL_CREATE
	numbers["epoll_wait"] = unix.SYS_EPOLL_WAIT
	numbers["eventfd"] = unix.SYS_EVENTFD
	numbers["fork"] = unix.SYS_FORK
	numbers["getdents"] = unix.SYS_GETDENTS
	numbers["getpgrp"] = unix.SYS_GETPGRP
	numbers["inotify_init"] = unix.SYS_INOTIFY_INIT
	numbers["lchown"] = unix.SYS_LCHOWN
	numbers["link"] = unix.SYS_LINK
	numbers["lstat"] = unix.SYS_LSTAT
	numbers["mkdir"] = unix.SYS_MKDIR
	numbers["mknod"] = unix.SYS_MKNOD
	numbers["newfstatat"] = unix.SYS_NEWFSTATAT
	numbers["open"] = unix.SYS_OPEN
	numbers["pause"] = unix.SYS_PAUSE
	numbers["pipe"] = unix.SYS_PIPE
	numbers["poll"] = unix.SYS_POLL
	numbers["readlink"] = unix.SYS_READLINK
	numbers["rename"] = unix.SYS_RENAME
	numbers["rmdir"] = unix.SYS_RMDIR
	numbers["select"] = unix.SYS_SELECT
	numbers["stat"] = unix.SYS_STAT
	numbers["symlink"] = unix.SYS_SYMLINK
	numbers["time"] = unix.SYS_TIME
	numbers["unlink"] = unix.SYS_UNLINK
	numbers["utime"] = unix.SYS_UTIME
	numbers["utimes"] = unix.SYS_UTIMES
	numbers["vfork"] = unix.SYS_VFORK
}
