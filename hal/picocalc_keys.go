package hal

// picoCalcKeys maps controller codes for non-printing keys to key codes.
var picoCalcKeys = map[byte]KeyCode{
	0x08: KeyBackspace,
	0x09: KeyTab,
	0xB1: KeyEscape,
	0xB4: KeyLeft,
	0xB5: KeyUp,
	0xB6: KeyDown,
	0xB7: KeyRight,
	0xD4: KeyDelete,
}

// picoCalcFnKeys puts the calculator functions on F1..F5.
var picoCalcFnKeys = map[byte]rune{
	0x81: 'C', // clear
	0x82: '±', // negate
	0x83: '%',
	0x84: '√',
	0x85: '=',
}

// translateKey turns a PicoCalc controller code into a key event.
func translateKey(code byte, press bool) (KeyEvent, bool) {
	if kc, ok := picoCalcKeys[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	if code == '\r' || code == '\n' {
		return KeyEvent{Code: KeyEnter, Press: press}, true
	}
	// Characters only matter on press; the input service ignores releases.
	if !press {
		return KeyEvent{}, false
	}
	if r, ok := picoCalcFnKeys[code]; ok {
		return KeyEvent{Rune: r, Press: true}, true
	}
	if code >= 0x20 && code < 0x7F {
		return KeyEvent{Rune: rune(code), Press: true}, true
	}
	return KeyEvent{}, false
}
