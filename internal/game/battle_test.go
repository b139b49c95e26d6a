package game

import "testing"

func TestMapByteToRange(t *testing.T) {
	// full byte range passes through untouched
	for n := 0; n < 256; n++ {
		if got := MapByteToRange(uint8(n), 0, 255); got != uint8(n) {
			t.Fatalf("MapByteToRange(%d, 0, 255) = %d", n, got)
		}
	}

	// every output stays inside [min, max]
	ranges := []struct{ min, max uint8 }{
		{0, 0}, {0, 1}, {0, 15}, {1, 6}, {16, 31}, {240, 255}, {7, 7},
	}
	for _, r := range ranges {
		for n := 0; n < 256; n++ {
			got := MapByteToRange(uint8(n), r.min, r.max)
			if got < r.min || got > r.max {
				t.Fatalf("MapByteToRange(%d, %d, %d) = %d, outside range", n, r.min, r.max, got)
			}
		}
	}

	// the extremes of the input map to the extremes of the range
	if got := MapByteToRange(0, 3, 9); got != 3 {
		t.Errorf("MapByteToRange(0, 3, 9) = %d, want 3", got)
	}
	if got := MapByteToRange(255, 3, 9); got != 9 {
		t.Errorf("MapByteToRange(255, 3, 9) = %d, want 9", got)
	}
}

func TestDeterministicRoll(t *testing.T) {
	rng := NewRng(1)
	system := DeterministicSystem()
	for v := uint8(0); v <= 0xF; v++ {
		if got := system.Roll(rng, v); got != v {
			t.Errorf("deterministic roll of %d = %d", v, got)
		}
	}
}

func TestOriginalRollRange(t *testing.T) {
	rng := NewRng(7)
	system := OriginalSystem()
	for v := uint8(0); v <= 0xF; v++ {
		max := v<<4 | 0xF
		for i := 0; i < 200; i++ {
			if got := system.Roll(rng, v); got > max {
				t.Fatalf("original roll of %X = %#x, above %#x", v, got, max)
			}
		}
	}
}

func TestDiceRollRange(t *testing.T) {
	rng := NewRng(9)
	system := DiceSystem(6)
	for v := uint8(1); v <= 0xF; v++ {
		for i := 0; i < 200; i++ {
			got := system.Roll(rng, v)
			if got < v || got > v*6 {
				t.Fatalf("dice roll of %d = %d, outside [%d, %d]", v, got, v, v*6)
			}
		}
	}

	// zero dice always roll zero
	if got := system.Roll(rng, 0); got != 0 {
		t.Errorf("dice roll of 0 = %d", got)
	}
}

func TestAttackSelection(t *testing.T) {
	tests := []struct {
		name      string
		card      Card
		wantDigit uint8
		wantValue uint8
	}{
		{"physical uses attack", NewCard(8, Physical, 2, 3, 0), 0, 8},
		{"magical uses attack", NewCard(8, Magical, 2, 3, 0), 0, 8},
		{"exploit uses attack", NewCard(8, Exploit, 2, 3, 0), 0, 8},
		{"assault picks highest attack", NewCard(0xC, Assault, 2, 3, 0), 0, 0xC},
		{"assault picks highest physical", NewCard(2, Assault, 0xC, 3, 0), 2, 0xC},
		{"assault picks highest magical", NewCard(2, Assault, 3, 0xC, 0), 3, 0xC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, value := attackSelection(tt.card)
			if digit != tt.wantDigit || value != tt.wantValue {
				t.Errorf("attackSelection = (%d, %d), want (%d, %d)",
					digit, value, tt.wantDigit, tt.wantValue)
			}
		})
	}
}

func TestDefenseSelection(t *testing.T) {
	defender := NewCard(4, Physical, 7, 2, 0)

	tests := []struct {
		name      string
		attacker  Card
		wantDigit uint8
		wantValue uint8
	}{
		{"physical hits physical defense", NewCard(8, Physical, 0, 0, 0), 2, 7},
		{"magical hits magical defense", NewCard(8, Magical, 0, 0, 0), 3, 2},
		{"exploit hits lowest defense", NewCard(8, Exploit, 0, 0, 0), 3, 2},
		{"assault hits lowest stat", NewCard(8, Assault, 0, 0, 0), 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, value := defenseSelection(tt.attacker, defender)
			if digit != tt.wantDigit || value != tt.wantValue {
				t.Errorf("defenseSelection = (%d, %d), want (%d, %d)",
					digit, value, tt.wantDigit, tt.wantValue)
			}
		})
	}

	// assault against a card whose attack is the lowest stat
	lowAttack := NewCard(1, Physical, 7, 5, 0)
	if digit, value := defenseSelection(NewCard(8, Assault, 0, 0, 0), lowAttack); digit != 0 || value != 1 {
		t.Errorf("assault vs low attack: (%d, %d), want (0, 1)", digit, value)
	}
}

func TestResolveBattleDeterministic(t *testing.T) {
	rng := NewRng(1)
	system := DeterministicSystem()

	attacker := NewCard(0xA, Physical, 0, 0, 0)
	weak := NewCard(0, Physical, 3, 0xF, 0)
	strong := NewCard(0, Physical, 0xF, 0, 0)
	equal := NewCard(0, Physical, 0xA, 0, 0)

	if r := resolveBattle(rng, system, attacker, weak); r.Winner != WinnerAttacker {
		t.Errorf("A vs 3: winner %s", r.Winner)
	}
	if r := resolveBattle(rng, system, attacker, strong); r.Winner != WinnerDefender {
		t.Errorf("A vs F: winner %s", r.Winner)
	}
	// equal rolls are a tie, which counts against the attacker downstream
	if r := resolveBattle(rng, system, attacker, equal); r.Winner != WinnerNone {
		t.Errorf("A vs A: winner %s", r.Winner)
	}
}
