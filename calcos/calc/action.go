package calc

import "fmt"

// ActionKind identifies a user action.
type ActionKind uint8

const (
	ActNone ActionKind = iota
	ActDigit
	ActOperator
	ActEquals
	ActClear
	ActNegate
	ActPercent
	ActSqrt
)

func (k ActionKind) String() string {
	switch k {
	case ActNone:
		return "none"
	case ActDigit:
		return "digit"
	case ActOperator:
		return "operator"
	case ActEquals:
		return "equals"
	case ActClear:
		return "clear"
	case ActNegate:
		return "negate"
	case ActPercent:
		return "percent"
	case ActSqrt:
		return "sqrt"
	default:
		return "unknown"
	}
}

// Action is one discrete user action.
//
// Digit is set for ActDigit, Op for ActOperator.
type Action struct {
	Kind  ActionKind
	Digit rune
	Op    Op
}

func Digit(r rune) Action   { return Action{Kind: ActDigit, Digit: r} }
func Operator(op Op) Action { return Action{Kind: ActOperator, Op: op} }

var (
	Equals  = Action{Kind: ActEquals}
	Clear   = Action{Kind: ActClear}
	Negate  = Action{Kind: ActNegate}
	Percent = Action{Kind: ActPercent}
	Sqrt    = Action{Kind: ActSqrt}
)

func (a Action) String() string {
	switch a.Kind {
	case ActDigit:
		return fmt.Sprintf("digit(%c)", a.Digit)
	case ActOperator:
		return fmt.Sprintf("operator(%s)", a.Op)
	default:
		return a.Kind.String()
	}
}

// Apply runs a on the machine.
//
// The returned error is non-nil only when the action latched an error (or
// was malformed); the display already shows ErrorText in that case.
func (m *Machine) Apply(a Action) error {
	switch a.Kind {
	case ActDigit:
		m.Digit(a.Digit)
		return nil
	case ActOperator:
		return m.Operator(a.Op)
	case ActEquals:
		return m.Equals()
	case ActClear:
		m.Clear()
		return nil
	case ActNegate:
		return m.Negate()
	case ActPercent:
		return m.Percent()
	case ActSqrt:
		return m.Sqrt()
	default:
		return fmt.Errorf("calc: unknown action %d", a.Kind)
	}
}

// Run applies a sequence of actions, stopping at the first error.
func (m *Machine) Run(actions ...Action) error {
	for _, a := range actions {
		if err := m.Apply(a); err != nil {
			return err
		}
	}
	return nil
}
