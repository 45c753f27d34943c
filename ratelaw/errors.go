package ratelaw

import "errors"

// Validation errors are always detected before any computation proceeds;
// a returned error guarantees no partial result. Branch with errors.Is.
var (
	// ErrEmptySide indicates a reaction side with no reactants at all.
	ErrEmptySide = errors.New("ratelaw: reaction side has no reactants")

	// ErrZeroStoichiometry indicates a reaction side on which no species has
	// a stoichiometric coefficient ≥ 1 (a degenerate reaction).
	ErrZeroStoichiometry = errors.New("ratelaw: reaction side has all-zero stoichiometry")

	// ErrNegativeStoichiometry indicates a negative stoichiometric coefficient.
	ErrNegativeStoichiometry = errors.New("ratelaw: negative stoichiometric coefficient")

	// ErrDuplicateSpecies indicates the same species listed twice on one side.
	ErrDuplicateSpecies = errors.New("ratelaw: duplicate species on one reaction side")

	// ErrNonPositiveKm indicates a half-saturation constant ≤ 0.
	ErrNonPositiveKm = errors.New("ratelaw: half-saturation constant must be positive")

	// ErrNonPositiveKcat indicates a catalytic constant ≤ 0.
	ErrNonPositiveKcat = errors.New("ratelaw: catalytic constant must be positive")

	// ErrNonPositiveEnzyme indicates a total enzyme concentration ≤ 0.
	ErrNonPositiveEnzyme = errors.New("ratelaw: total enzyme concentration must be positive")

	// ErrUnknownSpecies indicates At was given a concentration map missing a
	// species that appears in the reaction.
	ErrUnknownSpecies = errors.New("ratelaw: species missing from concentration map")

	// ErrNegativeConcentration indicates a negative species concentration.
	ErrNegativeConcentration = errors.New("ratelaw: negative species concentration")

	// ErrZeroDenominator is a numeric fault: the occupancy denominator
	// vanished at evaluation time (all saturation polynomials equal to 1).
	ErrZeroDenominator = errors.New("ratelaw: rate-law denominator is zero")

	// ErrNonPositiveConstant indicates an activation or inhibition constant ≤ 0.
	ErrNonPositiveConstant = errors.New("ratelaw: modulation constant must be positive")

	// ErrNegativeEffector indicates a negative effector concentration.
	ErrNegativeEffector = errors.New("ratelaw: negative effector concentration")
)
