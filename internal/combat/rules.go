// Package combat provides the damage, loot and progression rules shared by
// every entity.
package combat

import "math/rand"

// NegativeDamagePolicy decides what happens when the formula comes out below zero.
type NegativeDamagePolicy int

const (
	// ClampToZero turns negative damage into a harmless hit.
	ClampToZero NegativeDamagePolicy = iota
	// ApplyAsHealing passes negative damage through, healing the target.
	ApplyAsHealing
)

// String returns a human-readable policy name.
func (p NegativeDamagePolicy) String() string {
	switch p {
	case ClampToZero:
		return "clamp"
	case ApplyAsHealing:
		return "heal"
	default:
		return "unknown"
	}
}

// Attacker is the attacking side of a damage roll.
type Attacker struct {
	Level        int
	Attack       int
	WeaponAttack int // Attack stat of the right-hand item, or the unarmed fallback
}

// Defender is the defending side of a damage roll.
type Defender struct {
	Defense int
}

// Formula computes unfloored damage. It may return a negative value.
type Formula func(a Attacker, d Defender, rng *rand.Rand) float64

// Rules is the rule set an entity fights and levels with.
type Rules struct {
	// DefaultWeapon keeps an unarmed sentinel in the right hand at all times.
	// When false the right hand may be empty and UnarmedDamage is used instead.
	DefaultWeapon bool
	// UnarmedDamage is the weapon attack used with an empty right hand.
	UnarmedDamage int
	// Negative decides how sub-zero damage is applied.
	Negative NegativeDamagePolicy
	// Formula computes raw damage.
	Formula Formula

	// ExpMin and ExpMax bound the experience granted for a kill (inclusive).
	ExpMin, ExpMax int
	// HealthPerLevel is added to max health on every level gained.
	HealthPerLevel int
}

// StandardRules returns the canonical rule set: an always-equipped unarmed
// weapon and the level-scaled damage formula.
func StandardRules() *Rules {
	return &Rules{
		DefaultWeapon:  true,
		UnarmedDamage:  10,
		Negative:       ClampToZero,
		Formula:        LevelScaled,
		ExpMin:         15,
		ExpMax:         250,
		HealthPerLevel: 10,
	}
}

// LegacyRules returns the rule set where the right hand may be empty and an
// empty hand hits for a flat UnarmedDamage.
func LegacyRules() *Rules {
	r := StandardRules()
	r.DefaultWeapon = false
	return r
}

// Damage rolls damage for a against d and applies the negative damage policy.
func (r *Rules) Damage(a Attacker, d Defender, rng *rand.Rand) int {
	formula := r.Formula
	if formula == nil {
		formula = LevelScaled
	}
	damage := floor(formula(a, d, rng))
	if damage < 0 && r.Negative == ClampToZero {
		return 0
	}
	return damage
}

// RollExperience returns a random kill reward in [ExpMin, ExpMax].
func (r *Rules) RollExperience(rng *rand.Rand) int {
	if r.ExpMax <= r.ExpMin {
		return r.ExpMin
	}
	return r.ExpMin + rng.Intn(r.ExpMax-r.ExpMin+1)
}
