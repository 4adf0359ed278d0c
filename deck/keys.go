package deck

// Key is a decoded key press.
type Key int

const (
	KeyUnknown Key = iota
	KeyNext
	KeyPrev
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyNext:
		return "next"
	case KeyPrev:
		return "prev"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	keyEscape    = 0x1B
	keyInterrupt = 0x03 // Ctrl-C
)

// DecodeKeys turns raw terminal input into keys, in order. Escape sequences
// count as one key; arrow keys are recognized in both normal (ESC [) and
// application (ESC O) cursor mode.
//
//	next: n, space, right arrow, j, enter
//	prev: p, b, left arrow, k
//	quit: q, Ctrl-C
func DecodeKeys(input []byte) []Key {
	var keys []Key

	for i := 0; i < len(input); {
		if input[i] == keyEscape {
			seq := escapeSequence(input[i:])
			keys = append(keys, decodeEscape(seq))
			i += len(seq)
			continue
		}

		keys = append(keys, decodeByte(input[i]))
		i++
	}

	return keys
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func decodeByte(b byte) Key {
	switch b {
	case 'n', ' ', 'j', '\r', '\n':
		return KeyNext
	case 'p', 'b', 'k':
		return KeyPrev
	case 'q', keyInterrupt:
		return KeyQuit
	default:
		return KeyUnknown
	}
}

// escapeSequence returns the escape sequence at the start of input: a lone
// ESC, ESC followed by one byte, or a CSI/SS3 sequence through its final
// byte.
func escapeSequence(input []byte) []byte {
	if len(input) < 2 {
		return input[:1]
	}

	if input[1] != '[' && input[1] != 'O' {
		return input[:2]
	}

	for i := 2; i < len(input); i++ {
		if input[i] >= 0x40 && input[i] <= 0x7E {
			return input[:i+1]
		}
	}

	return input
}

func decodeEscape(seq []byte) Key {
	if len(seq) != 3 || (seq[1] != '[' && seq[1] != 'O') {
		return KeyUnknown
	}

	switch seq[2] {
	case 'C':
		return KeyNext
	case 'D':
		return KeyPrev
	default:
		return KeyUnknown
	}
}
