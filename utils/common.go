package utils

const (
	// Relative tolerance for two nodes sharing a location, scaled by the largest node radius
	COINCIDENTTOL   = 1.e-9
	// Tolerance for matching rotated rotor copies, as a fraction of the smallest rotor node spacing
	SPACINGFRACTION = 0.01
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)
