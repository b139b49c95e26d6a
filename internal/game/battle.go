package game

import "fmt"

// BattleKind selects how battle rolls are produced.
type BattleKind uint8

const (
	// BattleOriginal rolls a value in [v<<4, v<<4|0xF] and subtracts a
	// second roll bounded by the first, as in the original game.
	BattleOriginal BattleKind = iota
	// BattleDice rolls v dice and sums them.
	BattleDice
	// BattleDeterministic uses the stat value itself, no randomness.
	BattleDeterministic
)

// BattleSystem is a battle roll configuration.
type BattleSystem struct {
	Kind  BattleKind
	Sides uint8 // dice sides, BattleDice only
}

// OriginalSystem returns the original battle system.
func OriginalSystem() BattleSystem {
	return BattleSystem{Kind: BattleOriginal}
}

// DiceSystem returns a dice battle system with the given number of sides.
func DiceSystem(sides uint8) BattleSystem {
	return BattleSystem{Kind: BattleDice, Sides: sides}
}

// DeterministicSystem returns the deterministic battle system.
func DeterministicSystem() BattleSystem {
	return BattleSystem{Kind: BattleDeterministic}
}

// String returns the config-file name of the system.
func (s BattleSystem) String() string {
	switch s.Kind {
	case BattleOriginal:
		return "original"
	case BattleDice:
		return fmt.Sprintf("dice-%d", s.Sides)
	case BattleDeterministic:
		return "deterministic"
	default:
		return "unknown"
	}
}

// Roll produces a battle roll for a stat value under this system.
func (s BattleSystem) Roll(rng *Rng, value uint8) uint8 {
	switch s.Kind {
	case BattleOriginal:
		min := value << 4 // range: 00, 10, 20, ..., F0
		max := min | 0xF  // range: 0F, 1F, 2F, ..., FF
		stat1 := rng.U8(min, max)
		stat2 := rng.U8(0, stat1)
		return stat1 - stat2
	case BattleDice:
		// roll {value} dice and return the sum
		var sum uint8
		for i := uint8(0); i < value; i++ {
			sum += rng.U8(1, s.Sides)
		}
		return sum
	case BattleDeterministic:
		return value
	default:
		panic(fmt.Sprintf("game: unknown battle kind %d", s.Kind))
	}
}

// BattleWinner identifies the outcome of a battle. A tie counts against
// the attacker.
type BattleWinner uint8

const (
	WinnerNone BattleWinner = iota
	WinnerAttacker
	WinnerDefender
)

func (w BattleWinner) String() string {
	switch w {
	case WinnerAttacker:
		return "attacker"
	case WinnerDefender:
		return "defender"
	default:
		return "none"
	}
}

// BattleStat is one side's contribution to a battle: which stat digit was
// used (0 attack, 2 physical defense, 3 magical defense), its value and the
// roll it produced.
type BattleStat struct {
	Digit uint8
	Value uint8
	Roll  uint8
}

// BattleResult records a resolved battle.
type BattleResult struct {
	Winner  BattleWinner
	Attack  BattleStat
	Defense BattleStat
}

// attackSelection returns the stat digit and value the attacker fights with.
// Assault cards use their highest stat; everything else uses attack.
func attackSelection(attacker Card) (digit, value uint8) {
	if attacker.Type == Assault {
		att := attacker.Attack
		phy := attacker.PhysicalDefense
		mag := attacker.MagicalDefense
		switch {
		case mag > att && mag > phy:
			return 3, mag
		case phy > att:
			return 2, phy
		default:
			return 0, att
		}
	}
	return 0, attacker.Attack
}

// defenseSelection returns the stat digit and value the defender defends
// with, which depends on the attacker's card type.
func defenseSelection(attacker, defender Card) (digit, value uint8) {
	switch attacker.Type {
	case Physical:
		return 2, defender.PhysicalDefense
	case Magical:
		return 3, defender.MagicalDefense
	case Exploit:
		// use the lowest defense stat
		if defender.PhysicalDefense < defender.MagicalDefense {
			return 2, defender.PhysicalDefense
		}
		return 3, defender.MagicalDefense
	case Assault:
		// use the lowest stat
		att := defender.Attack
		phy := defender.PhysicalDefense
		mag := defender.MagicalDefense
		switch {
		case att < phy && att < mag:
			return 0, att
		case phy < mag:
			return 2, phy
		default:
			return 3, mag
		}
	default:
		panic(fmt.Sprintf("game: unknown card type %d", attacker.Type))
	}
}

// AttackValue returns the stat value the attacker would fight with.
func AttackValue(attacker Card) uint8 {
	_, value := attackSelection(attacker)
	return value
}

// DefenseValue returns the stat value the defender would defend with
// against the given attacker.
func DefenseValue(attacker, defender Card) uint8 {
	_, value := defenseSelection(attacker, defender)
	return value
}

// resolveBattle rolls both sides and decides the winner.
func resolveBattle(rng *Rng, system BattleSystem, attacker, defender Card) BattleResult {
	attackDigit, attackValue := attackSelection(attacker)
	defenseDigit, defenseValue := defenseSelection(attacker, defender)

	attack := BattleStat{Digit: attackDigit, Value: attackValue, Roll: system.Roll(rng, attackValue)}
	defense := BattleStat{Digit: defenseDigit, Value: defenseValue, Roll: system.Roll(rng, defenseValue)}

	winner := WinnerNone
	switch {
	case attack.Roll > defense.Roll:
		winner = WinnerAttacker
	case attack.Roll < defense.Roll:
		winner = WinnerDefender
	}

	return BattleResult{Winner: winner, Attack: attack, Defense: defense}
}
