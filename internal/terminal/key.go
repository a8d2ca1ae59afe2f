package terminal

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Key identifies the key of an Event.
type Key int

const (
	// KeyUnknown is any key lapwatch has no name for: function keys, cursor
	// keys, control characters.
	KeyUnknown Key = iota
	// KeyRune is a printable character, see Event.Rune.
	KeyRune
	KeyEnter
	KeyEsc
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	default:
		return "unknown"
	}
}

// Kind distinguishes key presses from releases. Terminals only report
// presses, releases exist for input sources that know about them.
type Kind int

const (
	Press Kind = iota
	Release
)

// Event is a single keyboard event.
type Event struct {
	Key  Key
	Rune rune
	Kind Kind
}

func (e Event) String() string {
	kind := "press"
	if e.Kind == Release {
		kind = "release"
	}
	if e.Key == KeyRune {
		return fmt.Sprintf("%s %q", kind, e.Rune)
	}
	return fmt.Sprintf("%s %v", kind, e.Key)
}

const (
	esc = 0x1b
	csi = '['
	ss3 = 'O'
)

// Decode converts the bytes read from a terminal in raw mode into key press
// events. A lone escape byte is the escape key. An escape byte followed by
// a control sequence, or by another key in the same read (an Alt-modified
// key), is a single unknown key.
func Decode(buf []byte) []Event {
	var events []Event

	for len(buf) > 0 {
		switch b := buf[0]; {
		case b == '\r' || b == '\n':
			events = append(events, Event{Key: KeyEnter})
			buf = buf[1:]
			// CR LF from terminals with icrnl still set is one key
			if b == '\r' && len(buf) > 0 && buf[0] == '\n' {
				buf = buf[1:]
			}

		case b == esc:
			switch {
			case len(buf) == 1:
				events = append(events, Event{Key: KeyEsc})
				buf = buf[1:]
			case buf[1] == csi || buf[1] == ss3:
				events = append(events, Event{Key: KeyUnknown})
				buf = skipSequence(buf)
			default:
				events = append(events, Event{Key: KeyUnknown})
				r, size := utf8.DecodeRune(buf[1:])
				buf = buf[1+size:]
				if r == '\r' && len(buf) > 0 && buf[0] == '\n' {
					buf = buf[1:]
				}
			}

		case b < utf8.RuneSelf:
			if unicode.IsPrint(rune(b)) {
				events = append(events, Event{Key: KeyRune, Rune: rune(b)})
			} else {
				events = append(events, Event{Key: KeyUnknown})
			}
			buf = buf[1:]

		default:
			r, size := utf8.DecodeRune(buf)
			if r == utf8.RuneError || !unicode.IsPrint(r) {
				events = append(events, Event{Key: KeyUnknown})
			} else {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
			buf = buf[size:]
		}
	}

	return events
}

// skipSequence drops a CSI or SS3 sequence from the start of buf. CSI
// sequences end with a byte in the range 0x40-0x7e, SS3 sequences are
// exactly three bytes long.
func skipSequence(buf []byte) []byte {
	if buf[1] == ss3 {
		if len(buf) < 3 {
			return nil
		}
		return buf[3:]
	}

	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return buf[i+1:]
		}
	}
	return nil
}
