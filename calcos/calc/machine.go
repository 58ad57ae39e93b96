// Package calc implements the calculator's arithmetic state machine.
//
// A Machine owns the display text, the pending expression, the accumulator
// and the pending operator. It is not safe for concurrent use; the
// calculator task is its only owner.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorText is shown in place of a number while an error is latched.
const ErrorText = "Error"

// MaxEntryLen bounds the number of characters typed into the display.
// Characters of a shown result do not count against it.
const MaxEntryLen = 16

// Errors latched by a Machine. Each is wrapped by the returned error.
var (
	ErrParse        = errors.New("not a number")
	ErrDivideByZero = errors.New("division by zero")
	ErrNegativeRoot = errors.New("square root of a negative number")
	ErrOverflow     = errors.New("result out of range")
)

// Op is a binary operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as shown on the keypad.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return ""
	}
}

// Plain returns the operator in 7-bit text, for fonts without the keypad glyphs.
func (o Op) Plain() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpDiv:
		return "/"
	default:
		return ""
	}
}

var plainOps = strings.NewReplacer(
	OpSub.Symbol(), OpSub.Plain(),
	OpMul.Symbol(), OpMul.Plain(),
	OpDiv.Symbol(), OpDiv.Plain(),
)

// PlainText rewrites the operator symbols in an expression to 7-bit text.
func PlainText(expr string) string { return plainOps.Replace(expr) }

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Mode is the machine's coarse state.
type Mode uint8

const (
	ModeEntry Mode = iota
	ModeOperatorPending
	ModeError
)

func (m Mode) String() string {
	switch m {
	case ModeEntry:
		return "entry"
	case ModeOperatorPending:
		return "operator_pending"
	case ModeError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a copy of everything a Machine exposes.
type State struct {
	Display     string
	Expression  string
	Accumulator float64
	Pending     Op
	Mode        Mode
	Err         error
}

// Machine is the calculator state machine.
type Machine struct {
	display string
	expr    string
	acc     float64
	op      Op
	err     error

	// base is the length of the shown result that typed digits extend.
	base int
}

// New returns a machine in its initial state.
func New() *Machine {
	m := &Machine{}
	m.Clear()
	return m
}

// Display returns the text of the current display value.
func (m *Machine) Display() string {
	if m.err != nil {
		return ErrorText
	}
	return m.display
}

// Expression returns the pending or last completed expression.
func (m *Machine) Expression() string { return m.expr }

// Accumulator returns the stored left-hand operand.
func (m *Machine) Accumulator() float64 { return m.acc }

// Pending returns the operator awaiting its second operand.
func (m *Machine) Pending() Op { return m.op }

// Err returns the latched error, if any.
func (m *Machine) Err() error { return m.err }

// Mode reports the machine's coarse state.
func (m *Machine) Mode() Mode {
	switch {
	case m.err != nil:
		return ModeError
	case m.op != OpNone:
		return ModeOperatorPending
	default:
		return ModeEntry
	}
}

// Snapshot returns a copy of the observable state.
func (m *Machine) Snapshot() State {
	return State{
		Display:     m.Display(),
		Expression:  m.expr,
		Accumulator: m.acc,
		Pending:     m.op,
		Mode:        m.Mode(),
		Err:         m.err,
	}
}

// Clear resets the machine to its initial state.
func (m *Machine) Clear() {
	m.display = "0"
	m.expr = ""
	m.acc = 0
	m.op = OpNone
	m.err = nil
	m.base = 0
}

// Digit appends r ('0'..'9' or '.') to the display.
//
// It reports whether the display changed.
func (m *Machine) Digit(r rune) bool {
	if m.err != nil {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
		if m.display == "0" {
			m.display = string(r)
			m.base = 0
			return true
		}
	case r == '.':
		for i := 0; i < len(m.display); i++ {
			if m.display[i] == '.' {
				return false
			}
		}
	default:
		return false
	}
	if len(m.display)-m.base >= MaxEntryLen {
		return false
	}
	next := m.display + string(r)
	if _, err := parseDisplay(next); err != nil {
		return false
	}
	m.display = next
	return true
}

// Operator stores the display as the accumulator and makes op pending.
func (m *Machine) Operator(op Op) error {
	if m.err != nil {
		return nil
	}
	if op == OpNone || op > OpDiv {
		return fmt.Errorf("calc: invalid operator %d", op)
	}
	v, err := parseDisplay(m.display)
	if err != nil {
		return m.fail(err)
	}
	m.acc = v
	m.op = op
	m.expr = FormatNumber(v) + " " + op.Symbol()
	m.display = "0"
	m.base = 0
	return nil
}

// Equals applies the pending operator to the accumulator and the display.
//
// Without a pending operator it does nothing.
func (m *Machine) Equals() error {
	if m.err != nil || m.op == OpNone {
		return nil
	}
	rhs, err := parseDisplay(m.display)
	if err != nil {
		return m.fail(err)
	}

	var res float64
	switch m.op {
	case OpAdd:
		res = m.acc + rhs
	case OpSub:
		res = m.acc - rhs
	case OpMul:
		res = m.acc * rhs
	case OpDiv:
		if rhs == 0 {
			return m.fail(ErrDivideByZero)
		}
		res = m.acc / rhs
	}
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return m.fail(ErrOverflow)
	}

	m.expr = FormatNumber(m.acc) + " " + m.op.Symbol() + " " + FormatNumber(rhs) + " ="
	m.display = FormatNumber(res)
	m.base = len(m.display)
	m.acc = res
	m.op = OpNone
	return nil
}

// Negate flips the sign of the display value.
func (m *Machine) Negate() error {
	return m.unary(func(v float64) (float64, error) { return -v, nil })
}

// Percent divides the display value by 100.
func (m *Machine) Percent() error {
	return m.unary(func(v float64) (float64, error) { return v / 100, nil })
}

// Sqrt replaces the display value with its square root.
func (m *Machine) Sqrt() error {
	return m.unary(func(v float64) (float64, error) {
		if v < 0 {
			return 0, ErrNegativeRoot
		}
		return math.Sqrt(v), nil
	})
}

func (m *Machine) unary(fn func(float64) (float64, error)) error {
	if m.err != nil {
		return nil
	}
	v, err := parseDisplay(m.display)
	if err != nil {
		return m.fail(err)
	}
	res, err := fn(v)
	if err != nil {
		return m.fail(err)
	}
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return m.fail(ErrOverflow)
	}
	m.display = FormatNumber(res)
	m.base = len(m.display)
	return nil
}

func (m *Machine) fail(err error) error {
	m.err = err
	m.op = OpNone
	return fmt.Errorf("calc: %w", err)
}

func parseDisplay(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}
