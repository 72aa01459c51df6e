//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

func readPasscodeNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errStdinUnavailable
	}

	console := windows.Handle(stdin.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(console, &mode); err != nil {
		return nil, err
	}
	if err := windows.SetConsoleMode(console, mode&^windows.ENABLE_ECHO_INPUT); err != nil {
		return nil, err
	}
	defer func() {
		_ = windows.SetConsoleMode(console, mode)
	}()

	return readPasscodeLine(stdin)
}
