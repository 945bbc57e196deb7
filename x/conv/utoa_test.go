package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1023, "1023"},
		{65535, "65535"},
	}
	for _, c := range cases {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Errorf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestUtoaEmptyBuf(t *testing.T) {
	if got := Utoa(nil, 42); len(got) != 0 {
		t.Fatalf("expected empty slice, got %q", got)
	}
}
