package proto

import "encoding/binary"

// KeyInputPayload encodes a MsgKeyInput payload.
//
// The payload is a VT100 byte stream: printable UTF-8, CR for Enter, 0x7f
// for Backspace, ESC alone for Escape and ESC '[' A..D for arrows. A key
// sequence may be split across messages.
func KeyInputPayload(b []byte) []byte {
	return LogLinePayload(b)
}

// PointerAction is the kind of pointer event.
type PointerAction uint8

const (
	PointerMove PointerAction = iota + 1
	PointerPress
	PointerRelease
	PointerLeave
)

func (a PointerAction) String() string {
	switch a {
	case PointerMove:
		return "move"
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerPayload encodes a MsgPointer payload.
//
// Layout (little-endian):
//   - u8:  action
//   - i16: x (framebuffer pixels)
//   - i16: y (framebuffer pixels)
func PointerPayload(action PointerAction, x, y int16) []byte {
	buf := make([]byte, 5)
	buf[0] = byte(action)
	binary.LittleEndian.PutUint16(buf[1:3], uint16(x))
	binary.LittleEndian.PutUint16(buf[3:5], uint16(y))
	return buf
}

// DecodePointerPayload decodes a PointerPayload.
func DecodePointerPayload(b []byte) (action PointerAction, x, y int16, ok bool) {
	if len(b) != 5 {
		return 0, 0, 0, false
	}
	action = PointerAction(b[0])
	if action < PointerMove || action > PointerLeave {
		return 0, 0, 0, false
	}
	x = int16(binary.LittleEndian.Uint16(b[1:3]))
	y = int16(binary.LittleEndian.Uint16(b[3:5]))
	return action, x, y, true
}
