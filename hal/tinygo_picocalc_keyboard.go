//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// The PicoCalc keyboard controller answers a FIFO read at 0x1F with a
// (state, code) pair. A zero pair means the FIFO is empty.
const (
	kbdAddr     uint16 = 0x1F
	kbdRegFIFO  byte   = 0x09
	kbdPressed  byte   = 0x01
	kbdReleased byte   = 0x03
)

type i2cKeyboard struct {
	bus  *machine.I2C
	req  [1]byte
	resp [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	// The carrier wires the controller to GP6/GP7 on I2C1; some targets only
	// expose I2C0 on those pins.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if k, ok := detectKeyboard(bus, freq); ok {
				return k, nil
			}
		}
	}
	return nil, errors.New("keyboard: controller not found")
}

func detectKeyboard(bus *machine.I2C, freq uint32) (*i2cKeyboard, bool) {
	if err := bus.Configure(machine.I2CConfig{
		SCL:       machine.GP7,
		SDA:       machine.GP6,
		Frequency: freq,
	}); err != nil {
		return nil, false
	}
	k := &i2cKeyboard{bus: bus, req: [1]byte{kbdRegFIFO}}
	// The controller can take a while to come up after power-on.
	for i := 0; i < 50; i++ {
		if k.bus.Tx(kbdAddr, k.req[:], k.resp[:]) == nil {
			return k, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

// readEvent pops one FIFO entry. Held keys and modifiers are dropped: the
// calculator has no use for chords or auto-repeat from the controller.
func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.bus.Tx(kbdAddr, k.req[:], k.resp[:]); err != nil {
		return KeyEvent{}, false
	}
	state, code := k.resp[0], k.resp[1]
	if code == 0 || (state != kbdPressed && state != kbdReleased) {
		return KeyEvent{}, false
	}
	return translateKey(code, state == kbdPressed)
}
