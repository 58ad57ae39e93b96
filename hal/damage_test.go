package hal

import "testing"

func TestDamageAdd(t *testing.T) {
	var d Damage
	if !d.Empty() {
		t.Fatal("zero Damage should be empty")
	}
	d.Add(5, 5, 5, 9)
	if !d.Empty() {
		t.Fatalf("zero-width box grew damage to %+v", d)
	}
	d.Add(10, 20, 30, 40)
	d.Add(2, 25, 12, 50)
	if want := (Damage{X0: 2, Y0: 20, X1: 30, Y1: 50}); d != want {
		t.Fatalf("damage = %+v, want %+v", d, want)
	}
}

func TestDamageClip(t *testing.T) {
	d := Damage{X0: -4, Y0: 300, X1: 400, Y1: 340}.Clip(320, 320)
	if want := (Damage{X0: 0, Y0: 300, X1: 320, Y1: 320}); d != want {
		t.Fatalf("Clip = %+v, want %+v", d, want)
	}
	if d := (Damage{X0: 330, Y0: 0, X1: 340, Y1: 10}).Clip(320, 320); !d.Empty() {
		t.Fatalf("off-screen damage clipped to %+v", d)
	}
}
