package hal

// Damage is the bounding box of framebuffer pixels written since the last
// Present. X1 and Y1 are exclusive.
type Damage struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether d covers no pixels.
func (d Damage) Empty() bool { return d.X0 >= d.X1 || d.Y0 >= d.Y1 }

// Add grows d to cover the box [x0,x1) x [y0,y1).
func (d *Damage) Add(x0, y0, x1, y1 int) {
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if d.Empty() {
		*d = Damage{X0: x0, Y0: y0, X1: x1, Y1: y1}
		return
	}
	d.X0 = min(d.X0, x0)
	d.Y0 = min(d.Y0, y0)
	d.X1 = max(d.X1, x1)
	d.Y1 = max(d.Y1, y1)
}

// Clip limits d to a w x h framebuffer.
func (d Damage) Clip(w, h int) Damage {
	d.X0, d.Y0 = max(d.X0, 0), max(d.Y0, 0)
	d.X1, d.Y1 = min(d.X1, w), min(d.Y1, h)
	if d.Empty() {
		return Damage{}
	}
	return d
}

// DamageSink is implemented by framebuffers that can present part of a
// frame. Drawing code reports what it touched before calling Present; a
// Present without a report pushes the whole frame.
type DamageSink interface {
	Damage(d Damage)
}
