package combat

import (
	"math"
	"math/rand"
)

// Variance bounds for the random multiplier applied to every hit.
const (
	varianceMin   = 0.85
	varianceRange = 0.25
)

// LevelScaled is the Pokémon-style formula:
//
//	((2*level+10)/250 * attack/defense * weapon + 2) * U[0.85, 1.10)
//
// A defense below 1 counts as 1.
func LevelScaled(a Attacker, d Defender, rng *rand.Rand) float64 {
	defense := d.Defense
	if defense < 1 {
		defense = 1
	}
	base := (2*float64(a.Level)+10)/250*float64(a.Attack)/float64(defense)*float64(a.WeaponAttack) + 2
	return base * (rng.Float64()*varianceRange + varianceMin)
}

func floor(v float64) int {
	return int(math.Floor(v))
}
