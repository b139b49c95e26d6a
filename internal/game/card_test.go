package game

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(8, Physical, 2, 3, 0), "8P23"},
		{NewCard(0xF, Magical, 0xA, 0, 0), "FMA0"},
		{NewCard(0, Exploit, 0, 0, 0), "0X00"},
		{NewCard(1, Assault, 0xC, 0xD, 0), "1ACD"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewCardPanicsOnBadStats(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for attack > 0xF")
		}
	}()
	NewCard(0x10, Physical, 0, 0, 0)
}

func TestPlayerOpposite(t *testing.T) {
	if Player1.Opposite() != Player2 {
		t.Error("Player1.Opposite() should be Player2")
	}
	if Player2.Opposite() != Player1 {
		t.Error("Player2.Opposite() should be Player1")
	}
	if PlayerNone.Opposite() != PlayerNone {
		t.Error("PlayerNone.Opposite() should be PlayerNone")
	}
}

func TestPlayerString(t *testing.T) {
	if Player1.String() != "P1" || Player2.String() != "P2" || PlayerNone.String() != "-" {
		t.Error("Player String() labels wrong")
	}
}
