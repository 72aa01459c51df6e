//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

// readPasscodeNoEcho turns terminal echo off for one line and restores the
// previous mode afterwards, also on read errors.
func readPasscodeNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errStdinUnavailable
	}

	fd := int(stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, getTermiosRequest)
	if err != nil {
		return nil, err
	}
	restore := *saved
	silent := restore
	silent.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, setTermiosRequest, &silent); err != nil {
		return nil, err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, setTermiosRequest, &restore)
	}()

	return readPasscodeLine(stdin)
}
