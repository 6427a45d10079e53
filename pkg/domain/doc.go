/*
Package domain contains the core model types of a blanket neutronics case.

It defines the entities handed to the external transport engine: Materials,
the nested-torus Geometry (Surfaces and Cells), the particle Source, run
Settings, Filters and Tallies, and the Model that aggregates them. The package
is kept pure and free of I/O; construction lives in the materials, geometry,
source and tally packages, export in the adapters.

# Key Entities

  - Material: named composition with density and temperature.
  - Surface: a z-axis torus shell boundary; the outermost one is a vacuum boundary.
  - Cell: the region between two consecutive surfaces, filled with one material.
  - Tally: a named request for scores over a set of filters.
  - Model: the immutable handoff object.
*/
package domain
