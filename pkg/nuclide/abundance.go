package nuclide

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Isotope is one naturally occurring isotope of an element.
type Isotope struct {
	A         int
	Abundance float64 // atom fraction in the natural element
	Mass      float64 // atomic mass, u
}

// IUPAC natural abundances and AME atomic masses for the elements the
// blanket catalog uses.
var natural = map[string][]Isotope{
	"H":  {{1, 0.99984426, 1.00782503223}, {2, 0.00015574, 2.01410177812}},
	"Be": {{9, 1, 9.012183065}},
	"C":  {{12, 0.988922, 12.0}, {13, 0.011078, 13.00335483507}},
	"F":  {{19, 1, 18.99840316273}},
	"Al": {{27, 1, 26.98153853}},
	"Ti": {
		{46, 0.0825, 45.95262772}, {47, 0.0744, 46.95175879}, {48, 0.7372, 47.94794198},
		{49, 0.0541, 48.94786568}, {50, 0.0518, 49.94478689},
	},
	"Cr": {
		{50, 0.04345, 49.94604183}, {52, 0.83789, 51.94050623},
		{53, 0.09501, 52.94064815}, {54, 0.02365, 53.93887916},
	},
	"Fe": {
		{54, 0.05845, 53.93960899}, {56, 0.91754, 55.93493633},
		{57, 0.02119, 56.93539284}, {58, 0.00282, 57.93327443},
	},
	"Co": {{59, 1, 58.93319429}},
	"Ni": {
		{58, 0.680769, 57.93534241}, {60, 0.262231, 59.93078588}, {61, 0.011399, 60.93105557},
		{62, 0.036345, 61.92834537}, {64, 0.009256, 63.92796682},
	},
	"Cu": {{63, 0.6915, 62.92959772}, {65, 0.3085, 64.92778970}},
	"Nb": {{93, 1, 92.9063730}},
	"Mo": {
		{92, 0.1453, 91.90680796}, {94, 0.0915, 93.90508490}, {95, 0.1584, 94.90583877},
		{96, 0.1667, 95.90467612}, {97, 0.0960, 96.90601812}, {98, 0.2439, 97.90540482},
		{100, 0.0982, 99.9074718},
	},
}

// Share is an isotope name with its part of an element fraction.
type Share struct {
	Name     string
	Fraction float64
}

// NaturalIsotopes returns the natural isotopes of an element symbol.
func NaturalIsotopes(symbol string) ([]Isotope, bool) {
	iso, ok := natural[symbol]
	if !ok {
		return nil, false
	}
	return append([]Isotope(nil), iso...), true
}

// ExpandAtom splits an atom fraction of a natural element over its isotopes.
func ExpandAtom(symbol string, fraction float64) ([]Share, error) {
	iso, ok := natural[symbol]
	if !ok {
		return nil, fmt.Errorf("element %q: no natural abundance data", symbol)
	}
	out := make([]Share, len(iso))
	for i, n := range iso {
		out[i] = Share{Name: symbol + strconv.Itoa(n.A), Fraction: fraction * n.Abundance}
	}
	return out, nil
}

// ExpandWeight splits a weight fraction of a natural element over its
// isotopes in proportion to abundance times atomic mass.
func ExpandWeight(symbol string, fraction float64) ([]Share, error) {
	iso, ok := natural[symbol]
	if !ok {
		return nil, fmt.Errorf("element %q: no natural abundance data", symbol)
	}
	masses := make([]float64, len(iso))
	for i, n := range iso {
		masses[i] = n.Abundance * n.Mass
	}
	total := floats.Sum(masses)
	out := make([]Share, len(iso))
	for i, n := range iso {
		out[i] = Share{Name: symbol + strconv.Itoa(n.A), Fraction: fraction * masses[i] / total}
	}
	return out, nil
}
