package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgKeyInput
	MsgPointer
	MsgThemeSet
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgKeyInput:
		return "key_input"
	case MsgPointer:
		return "pointer"
	case MsgThemeSet:
		return "theme_set"
	default:
		return "unknown"
	}
}
