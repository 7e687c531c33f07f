package interaction

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ErrInterrupted is returned when the user presses Ctrl-C during a
// confirmation read. The terminal state is restored before it surfaces.
var ErrInterrupted = errors.New("interrupted")

// Decision is the outcome of one confirmation prompt.
type Decision int

const (
	DecisionExport Decision = iota
	DecisionSkip
)

// Accepted key codes. Enter arrives as LF with ICRNL left on, but some
// terminals deliver CR, so both confirm.
const (
	keyCtrlC   = 3
	keyEnterLF = 10
	keyEnterCR = 13
	keyEscape  = 27
)

// ConfirmReader blocks until the user decides whether to export one memo.
// The export loop depends on this interface so tests can script decisions
// instead of driving a real terminal.
type ConfirmReader interface {
	ReadDecision() (Decision, error)
}

// KeyboardReader reads single keypresses from a terminal. Raw no-echo mode
// is held only for the duration of one ReadDecision call and restored on
// every exit path.
type KeyboardReader struct {
	in *os.File
}

// NewKeyboardReader creates a reader on stdin.
func NewKeyboardReader() *KeyboardReader {
	return &KeyboardReader{in: os.Stdin}
}

// ReadDecision puts the terminal into no-echo, non-canonical mode, reads
// keys until Enter (export) or Escape (skip), and restores the previous
// terminal state. Other keys are discarded without echo or timeout. ISIG is
// cleared while raw mode is held, so Ctrl-C arrives as a byte and the
// deferred restore runs before ErrInterrupted surfaces, instead of the
// default signal disposition killing the process with the terminal still
// raw.
func (kr *KeyboardReader) ReadDecision() (Decision, error) {
	fd := int(kr.in.Fd())

	oldState, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return DecisionSkip, err
	}

	newState := *oldState
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &newState); err != nil {
		return DecisionSkip, err
	}
	defer unix.IoctlSetTermios(fd, ioctlWriteTermios, oldState)

	buf := make([]byte, 1)
	for {
		n, err := kr.in.Read(buf)
		if err != nil {
			return DecisionSkip, err
		}
		if n == 0 {
			continue
		}
		decision, ok, err := decodeKey(buf[0])
		if err != nil {
			return DecisionSkip, err
		}
		if ok {
			return decision, nil
		}
	}
}

// decodeKey maps a raw key byte to a read outcome. Unrecognized keys report
// ok=false and the read loop repeats; Ctrl-C reports ErrInterrupted.
func decodeKey(b byte) (Decision, bool, error) {
	switch b {
	case keyEnterLF, keyEnterCR:
		return DecisionExport, true, nil
	case keyEscape:
		return DecisionSkip, true, nil
	case keyCtrlC:
		return DecisionSkip, true, ErrInterrupted
	}
	return DecisionSkip, false, nil
}

// ScriptedReader replays canned decisions, for tests and non-interactive
// callers. It returns io.EOF once the script is exhausted.
type ScriptedReader struct {
	decisions []Decision
	next      int
}

// NewScriptedReader creates a reader replaying the given decisions in order.
func NewScriptedReader(decisions ...Decision) *ScriptedReader {
	return &ScriptedReader{decisions: decisions}
}

// ReadDecision returns the next scripted decision.
func (sr *ScriptedReader) ReadDecision() (Decision, error) {
	if sr.next >= len(sr.decisions) {
		return DecisionSkip, io.EOF
	}
	decision := sr.decisions[sr.next]
	sr.next++
	return decision, nil
}
