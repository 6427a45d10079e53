/*
Package blanket assembles the neutronics model of a toroidal fusion breeding
blanket and hands it to an external Monte Carlo transport engine.

A case is a small set of parameters: the plasma-facing first-wall area, the
torus major radius, seven shell thicknesses, the Li-6 enrichment of the
FLiBe breeder, the D-T source peak and the run controls. From them the
Assembler derives eight nested tori, binds each shell to its material, adds
a ring fusion source and enumerates the heating, flux, spectrum and tritium
production tallies the engine should score.

# Pipeline

  - Material catalog (pkg/materials): tungsten first wall, Inconel 718
    structure, FLiBe breeder, beryllium multiplier and a near-vacuum chamber.
  - Shell radii (pkg/geometry): r0 = A / (4π²R), then one thickness per shell.
  - Geometry: one z-torus per radius, one cell per shell, vacuum outside.
  - Source (pkg/source): ring at the major radius, isotropic, Muir spectrum.
  - Tallies (pkg/tally): 67 named tallies over shared filters.
  - Validation (pkg/validation): every failure reported at once.

# Usage

	asm := blanket.New(blanket.WithLogger(logger))
	model, err := asm.Build(ctx, blanket.DefaultCase())
	if err != nil {
		log.Fatal(err)
	}
	err = asm.Export(ctx, model, openmc.New("out", openmc.WithGroups(registry)))

The Model is immutable after Build; exporters (pkg/adapters/openmc,
pkg/adapters/manifest) and stores (pkg/ports.ModelStore) only read it.
*/
package blanket
