package game

import "testing"

func TestArrowsReverse(t *testing.T) {
	tests := []struct {
		arrow, want Arrows
	}{
		{Up, Down},
		{UpRight, DownLeft},
		{Right, Left},
		{DownRight, UpLeft},
		{Down, Up},
		{DownLeft, UpRight},
		{Left, Right},
		{UpLeft, DownRight},
	}

	for _, tt := range tests {
		if got := tt.arrow.Reverse(); got != tt.want {
			t.Errorf("%s.Reverse() = %s, want %s", tt.arrow, got, tt.want)
		}
	}
}

func TestArrowsReverseIsInvolution(t *testing.T) {
	for a := 0; a < 256; a++ {
		arrows := Arrows(a)
		if got := arrows.Reverse().Reverse(); got != arrows {
			t.Fatalf("%08b reversed twice = %08b", a, uint8(got))
		}
	}
}

func TestArrowsReversePreservesCount(t *testing.T) {
	for a := 0; a < 256; a++ {
		arrows := Arrows(a)
		if arrows.Reverse().Count() != arrows.Count() {
			t.Fatalf("%08b: reverse changed arrow count", a)
		}
	}
}

func TestArrowsHas(t *testing.T) {
	arrows := Up | Right | DownLeft
	for _, a := range []Arrows{Up, Right, DownLeft} {
		if !arrows.Has(a) {
			t.Errorf("%08b should have %s", uint8(arrows), a)
		}
	}
	for _, a := range []Arrows{UpRight, DownRight, Down, Left, UpLeft} {
		if arrows.Has(a) {
			t.Errorf("%08b should not have %s", uint8(arrows), a)
		}
	}
}

func TestArrowsString(t *testing.T) {
	tests := []struct {
		arrows Arrows
		want   string
	}{
		{NoArrows, "-"},
		{Up, "U"},
		{Up | Right | DownLeft, "U,R,DL"},
		{AllArrows, "U,UR,R,DR,D,DL,L,UL"},
	}

	for _, tt := range tests {
		if got := tt.arrows.String(); got != tt.want {
			t.Errorf("Arrows(%08b).String() = %q, want %q", uint8(tt.arrows), got, tt.want)
		}
	}
}
