// hal/platform_host_test.go
package hal

import "testing"

func TestFakePinEdgeIRQ(t *testing.T) {
	p := &FakePin{number: 18}
	if err := p.ConfigureInput(PullUp); err != nil {
		t.Fatalf("ConfigureInput: %v", err)
	}

	fired := 0
	if err := p.SetIRQ(EdgeBoth, func() { fired++ }); err != nil {
		t.Fatalf("SetIRQ: %v", err)
	}

	p.Set(true)  // rising
	p.Set(true)  // no edge
	p.Set(false) // falling
	if fired != 2 {
		t.Fatalf("expected 2 IRQs, got %d", fired)
	}

	if err := p.ClearIRQ(); err != nil {
		t.Fatalf("ClearIRQ: %v", err)
	}
	p.Set(true)
	if fired != 2 {
		t.Fatalf("IRQ fired after ClearIRQ")
	}
}

func TestFakePinSingleEdgeIRQ(t *testing.T) {
	p := &FakePin{}
	rising := 0
	_ = p.SetIRQ(EdgeRising, func() { rising++ })

	p.Set(true)
	p.Set(false)
	p.Set(true)
	if rising != 2 {
		t.Fatalf("expected 2 rising IRQs, got %d", rising)
	}
}

func TestFakeADC(t *testing.T) {
	a := &FakeADC{}
	a.SetCounts(ChanTemp, 221)
	a.SetCounts(ChanPoti, 512)
	if got := a.ReadRaw(ChanTemp); got != 221 {
		t.Fatalf("temp = %d", got)
	}
	if got := a.ReadRaw(ChanPoti); got != 512 {
		t.Fatalf("poti = %d", got)
	}
}
