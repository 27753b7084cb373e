// Package leveling defines the pluggable XP-threshold strategy used by the
// player progression tracker. The curve is configuration, not engine logic:
// nothing outside this package hard-codes a formula.
package leveling

import "math"

const (
	// DefaultBaseXP is the base XP value used by the default curve
	DefaultBaseXP = 100.0

	// DefaultLevelExponent is the exponent used in the default curve:
	// XP for next level = BaseXP * (Level ^ LevelExponent)
	DefaultLevelExponent = 1.5
)

// Strategy supplies the XP required to advance from a given level to the
// next. Implementations must be pure and deterministic.
type Strategy interface {
	XPForNextLevel(level int) int
}

// Polynomial is the default threshold curve: Base * level^Exponent.
type Polynomial struct {
	Base     float64
	Exponent float64
}

// NewDefault returns the curve the service ships with.
func NewDefault() Polynomial {
	return Polynomial{Base: DefaultBaseXP, Exponent: DefaultLevelExponent}
}

// XPForNextLevel returns the XP needed to advance from level to level+1.
func (p Polynomial) XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(p.Base * math.Pow(float64(level), p.Exponent))
}

// FixedStep advances a level every Step XP regardless of level.
// Used in tests so assertions don't depend on the default curve.
type FixedStep struct {
	Step int
}

// XPForNextLevel returns the fixed step.
func (f FixedStep) XPForNextLevel(level int) int {
	return f.Step
}
