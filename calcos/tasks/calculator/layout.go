package calculator

import (
	"bluecalc/calcos/calc"
	"bluecalc/calcos/gfx"
)

type buttonKind uint8

const (
	kindDigit buttonKind = iota
	kindFunction
	kindOperator
)

type icon uint8

const (
	iconNone icon = iota
	iconPlus
	iconMinus
	iconTimes
	iconDivide
	iconPlusMinus
	iconSqrt
)

type button struct {
	label  string
	icon   icon
	kind   buttonKind
	action calc.Action
}

const (
	gridCols = 4
	gridRows = 5
)

// keypad is the button grid in row-major order.
var keypad = [gridRows * gridCols]button{
	{label: "C", kind: kindFunction, action: calc.Clear},
	{label: "±", icon: iconPlusMinus, kind: kindFunction, action: calc.Negate},
	{label: "%", kind: kindFunction, action: calc.Percent},
	{label: "÷", icon: iconDivide, kind: kindOperator, action: calc.Operator(calc.OpDiv)},

	{label: "7", action: calc.Digit('7')},
	{label: "8", action: calc.Digit('8')},
	{label: "9", action: calc.Digit('9')},
	{label: "×", icon: iconTimes, kind: kindOperator, action: calc.Operator(calc.OpMul)},

	{label: "4", action: calc.Digit('4')},
	{label: "5", action: calc.Digit('5')},
	{label: "6", action: calc.Digit('6')},
	{label: "−", icon: iconMinus, kind: kindOperator, action: calc.Operator(calc.OpSub)},

	{label: "1", action: calc.Digit('1')},
	{label: "2", action: calc.Digit('2')},
	{label: "3", action: calc.Digit('3')},
	{label: "+", icon: iconPlus, kind: kindOperator, action: calc.Operator(calc.OpAdd)},

	{label: "0", action: calc.Digit('0')},
	{label: ".", action: calc.Digit('.')},
	{label: "√", icon: iconSqrt, kind: kindFunction, action: calc.Sqrt},
	{label: "=", kind: kindOperator, action: calc.Equals},
}

// buttonFor returns the keypad index bound to a, or -1.
func buttonFor(a calc.Action) int {
	for i, b := range keypad {
		if b.action == a {
			return i
		}
	}
	return -1
}

type layout struct {
	panel   gfx.Rect
	buttons [gridRows * gridCols]gfx.Rect
	pad     int
	radius  int
}

func newLayout(width, height int) layout {
	var l layout
	pad := width / 35
	if pad < 4 {
		pad = 4
	}
	gap := pad * 4 / 5
	l.pad = pad

	l.panel = gfx.Rect{X: pad, Y: pad, W: width - 2*pad, H: height * 6 / 25}

	top := l.panel.Y + l.panel.H + pad
	cellW := (width - 2*pad - (gridCols-1)*gap) / gridCols
	cellH := (height - top - pad - (gridRows-1)*gap) / gridRows
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	l.radius = min(cellW, cellH) / 6

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			l.buttons[row*gridCols+col] = gfx.Rect{
				X: pad + col*(cellW+gap),
				Y: top + row*(cellH+gap),
				W: cellW,
				H: cellH,
			}
		}
	}
	return l
}

// hit returns the button under (x, y), or -1.
func (l *layout) hit(x, y int) int {
	for i, r := range l.buttons {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// move steps keyboard focus across the grid, clamping at the edges.
func move(focus, dx, dy int) int {
	if focus < 0 {
		return 0
	}
	row := focus/gridCols + dy
	col := focus%gridCols + dx
	row = max(0, min(gridRows-1, row))
	col = max(0, min(gridCols-1, col))
	return row*gridCols + col
}
