package calc

// ActionForRune maps a typed character to an action.
//
//	0-9 .        digits
//	+ - * x X /  operators (the keypad symbols × ÷ − are accepted too)
//	= Enter      equals
//	c C          clear
//	n _ ±        negate
//	%            percent
//	r s √        square root
func ActionForRune(r rune) (Action, bool) {
	switch {
	case r >= '0' && r <= '9', r == '.':
		return Digit(r), true
	}
	switch r {
	case '+':
		return Operator(OpAdd), true
	case '-', '−':
		return Operator(OpSub), true
	case '*', 'x', 'X', '×':
		return Operator(OpMul), true
	case '/', '÷':
		return Operator(OpDiv), true
	case '=', '\r', '\n':
		return Equals, true
	case 'c', 'C':
		return Clear, true
	case 'n', '_', '±':
		return Negate, true
	case '%':
		return Percent, true
	case 'r', 's', '√':
		return Sqrt, true
	}
	return Action{}, false
}

// ParseKeys maps every recognised character of s to an action, skipping
// the rest.
func ParseKeys(s string) []Action {
	out := make([]Action, 0, len(s))
	for _, r := range s {
		if a, ok := ActionForRune(r); ok {
			out = append(out, a)
		}
	}
	return out
}
