package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var errStdinUnavailable = errors.New("stdin unavailable")

// readPasscode is swapped in tests; terminals get hidden input.
var readPasscode = readPasscodeNoEcho

type PasscodeManager interface {
	SetPasscode(passcode string) error
	ClearPasscode() error
}

// RunSetPasscodeCommand asks for the new passcode twice without echoing it.
func RunSetPasscodeCommand(lock PasscodeManager, stdin *os.File, out io.Writer) error {
	fmt.Fprint(out, "New passcode (4-12 digits): ")
	first, err := readPasscode(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return fmt.Errorf("read passcode: %w", err)
	}

	fmt.Fprint(out, "Repeat passcode: ")
	second, err := readPasscode(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return fmt.Errorf("read passcode: %w", err)
	}

	if string(first) != string(second) {
		return errors.New("passcodes do not match")
	}
	if err := lock.SetPasscode(string(first)); err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ Passcode set. Existing unlock sessions were signed out.")
	return nil
}

// RunClearPasscodeCommand removes the app lock, for a forgotten passcode.
func RunClearPasscodeCommand(lock PasscodeManager, out io.Writer) error {
	if err := lock.ClearPasscode(); err != nil {
		return err
	}
	fmt.Fprintln(out, "✅ Passcode removed. The app is no longer locked.")
	return nil
}

// readPasscodeLine reads one byte at a time so nothing past the newline is
// consumed; the second prompt must still find its line on stdin.
func readPasscodeLine(r io.Reader) ([]byte, error) {
	var line []byte
	next := make([]byte, 1)
	for {
		n, err := r.Read(next)
		if n > 0 {
			if next[0] == '\n' {
				break
			}
			line = append(line, next[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimSpace(line), nil
}
