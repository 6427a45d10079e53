// Package nuclide parses the isotope and element names used in material
// compositions ("W182", "Li6", "Fe") and maps them to ZZZAAAMMMM ids.
package nuclide

import (
	"fmt"
	"strconv"
	"unicode"
)

// ID describes a nuclide in ZZZAAAMMMM format.
type ID int

// Z returns the atomic number of a nuclide.
func (n ID) Z() int {
	return int(n) / 10000000
}

// A returns the mass number of a nuclide.
func (n ID) A() int {
	return (int(n) / 10000) % 1000
}

// Nuclide is a parsed isotope name. A is zero for a natural element.
type Nuclide struct {
	Symbol string
	Z      int
	A      int
}

// ID returns the ZZZAAAMMMM id (ground state).
func (n Nuclide) ID() ID {
	return ID(n.Z*10000000 + n.A*10000)
}

// IsElement reports whether the name carried no mass number.
func (n Nuclide) IsElement() bool {
	return n.A == 0
}

func (n Nuclide) String() string {
	if n.IsElement() {
		return n.Symbol
	}
	return n.Symbol + strconv.Itoa(n.A)
}

// AtomicNumber returns Z for an element symbol.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := atomicNumbers[symbol]
	return z, ok
}

// Symbol returns the element symbol for an atomic number.
func Symbol(z int) (string, bool) {
	if z <= 0 || z >= len(symbols) {
		return "", false
	}
	return symbols[z], true
}

// Parse reads a name of the form <Symbol>[<A>], e.g. "Li6", "W182" or "Be".
func Parse(name string) (Nuclide, error) {
	i := 0
	for i < len(name) && unicode.IsLetter(rune(name[i])) {
		i++
	}
	symbol, rest := name[:i], name[i:]
	if symbol == "" {
		return Nuclide{}, fmt.Errorf("nuclide %q: missing element symbol", name)
	}

	z, ok := AtomicNumber(symbol)
	if !ok {
		return Nuclide{}, fmt.Errorf("nuclide %q: unknown element %q", name, symbol)
	}

	n := Nuclide{Symbol: symbol, Z: z}
	if rest == "" {
		return n, nil
	}

	a, err := strconv.Atoi(rest)
	if err != nil || a <= 0 {
		return Nuclide{}, fmt.Errorf("nuclide %q: invalid mass number %q", name, rest)
	}
	if a < z {
		return Nuclide{}, fmt.Errorf("nuclide %q: mass number %d below atomic number %d", name, a, z)
	}
	n.A = a
	return n, nil
}

// ParseElement is Parse restricted to bare element symbols.
func ParseElement(name string) (Nuclide, error) {
	n, err := Parse(name)
	if err != nil {
		return Nuclide{}, err
	}
	if !n.IsElement() {
		return Nuclide{}, fmt.Errorf("element %q: carries a mass number", name)
	}
	return n, nil
}

// ParseIsotope is Parse restricted to names with a mass number.
func ParseIsotope(name string) (Nuclide, error) {
	n, err := Parse(name)
	if err != nil {
		return Nuclide{}, err
	}
	if n.IsElement() {
		return Nuclide{}, fmt.Errorf("nuclide %q: missing mass number", name)
	}
	return n, nil
}
