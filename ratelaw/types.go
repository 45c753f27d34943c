package ratelaw

import "fmt"

// Reactant couples one species with its stoichiometric coefficient and its
// half-saturation constant on one side of the reaction. Passing per-species
// records (instead of parallel slices) makes length mismatches between
// species, stoichiometry and Km impossible by construction.
//
// Units: Km in mmol/L; Stoich is dimensionless and non-negative.
type Reactant struct {
	Species string
	Stoich  int
	Km      float64
}

// Params parameterizes one reversible reaction.
//
//   - Left, Right — the two reaction sides; independent, possibly of
//     different cardinality, each needing at least one species with
//     stoichiometric coefficient ≥ 1.
//   - KcatPlus, KcatMinus — forward/reverse catalytic constants, 1/s.
//   - Etot — total enzyme concentration, mmol/L; scales the rate linearly.
type Params struct {
	Left  []Reactant
	Right []Reactant

	KcatPlus  float64
	KcatMinus float64
	Etot      float64
}

// Validate checks every precondition of the convenience rate law. It is
// called by Build and At before any computation; exported so callers can
// vet parameter blocks up front (e.g. once before a long ODE run).
func (p Params) Validate() error {
	if err := validateSide("left", p.Left); err != nil {
		return err
	}
	if err := validateSide("right", p.Right); err != nil {
		return err
	}
	if p.KcatPlus <= 0 {
		return fmt.Errorf("%w: kcat+ = %g", ErrNonPositiveKcat, p.KcatPlus)
	}
	if p.KcatMinus <= 0 {
		return fmt.Errorf("%w: kcat- = %g", ErrNonPositiveKcat, p.KcatMinus)
	}
	if p.Etot <= 0 {
		return fmt.Errorf("%w: Etot = %g", ErrNonPositiveEnzyme, p.Etot)
	}
	return nil
}

func validateSide(name string, side []Reactant) error {
	if len(side) == 0 {
		return fmt.Errorf("%w: %s side", ErrEmptySide, name)
	}
	seen := make(map[string]struct{}, len(side))
	maxStoich := 0
	for _, r := range side {
		if r.Stoich < 0 {
			return fmt.Errorf("%w: %s side, species %q has stoich %d",
				ErrNegativeStoichiometry, name, r.Species, r.Stoich)
		}
		if r.Km <= 0 {
			return fmt.Errorf("%w: %s side, species %q has Km %g",
				ErrNonPositiveKm, name, r.Species, r.Km)
		}
		if _, dup := seen[r.Species]; dup {
			return fmt.Errorf("%w: %s side, species %q",
				ErrDuplicateSpecies, name, r.Species)
		}
		seen[r.Species] = struct{}{}
		if r.Stoich > maxStoich {
			maxStoich = r.Stoich
		}
	}
	if maxStoich == 0 {
		return fmt.Errorf("%w: %s side", ErrZeroStoichiometry, name)
	}
	return nil
}
