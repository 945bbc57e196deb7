package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10) = %d", got)
	}
	// Swapped bounds are tolerated.
	if got := Clamp(42, 10, 0); got != 10 {
		t.Fatalf("Clamp(42,10,0) = %d", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(uint16(211), uint16(211), uint16(231)) {
		t.Fatal("lower bound should be inclusive")
	}
	if !Between(uint16(231), uint16(211), uint16(231)) {
		t.Fatal("upper bound should be inclusive")
	}
	if Between(uint16(232), uint16(211), uint16(231)) {
		t.Fatal("232 outside [211,231]")
	}
}

func TestAbsDiff(t *testing.T) {
	if got := AbsDiff(uint16(221), uint16(230)); got != 9 {
		t.Fatalf("AbsDiff(221,230) = %d", got)
	}
	if got := AbsDiff(uint16(230), uint16(221)); got != 9 {
		t.Fatalf("AbsDiff(230,221) = %d", got)
	}
	if got := AbsDiff(uint16(7), uint16(7)); got != 0 {
		t.Fatalf("AbsDiff(7,7) = %d", got)
	}
}
