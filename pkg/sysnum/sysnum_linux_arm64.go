package sysnum

import "golang.org/x/sys/unix"

func init() {
	// arm64 names this call fstatat; catalogs generated on amd64 say
	// newfstatat. Accept both.
	numbers["fstatat"] = unix.SYS_FSTATAT
	numbers["newfstatat"] = unix.SYS_FSTATAT
}
