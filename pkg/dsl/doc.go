/*
Package dsl provides a Go DSL for declaring material compositions.

It replaces literal tables with a type-safe, fluent builder: materials are
declared in order, constituents are appended with their fraction basis, and
Build hands out immutable copies with sequential ids.

Example usage:

	package main

	import (
		"github.com/aretw0/blanket/pkg/domain"
		"github.com/aretw0/blanket/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Material("neutron_multiplier").
			Element("Be", 1).
			Density(domain.DensityUnitsGramsPerCC, 1.848).
			Temperature(900)

		b.Material("structural_material").
			ElementWeight("Ni", 0.53).
			ElementWeight("Cr", 0.1906).
			Density(domain.DensityUnitsGramsPerCC, 8.19)

		materials, err := b.Build()
		// ...
	}
*/
package dsl
