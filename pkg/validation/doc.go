// Package validation checks an assembled model before it is handed to the
// transport engine.
//
// Model runs every check and reports all failures at once:
//
//	if err := validation.Model(m); err != nil {
//	    for _, e := range validation.Errors(err) {
//	        // each e is a *ValidationError keyed by entity path
//	    }
//	}
//
// Checks cover materials (names, densities, temperatures, fraction bases,
// nuclide symbols, weight-fraction totals), geometry (surface/cell counts,
// radial order, region chaining, vacuum boundary, material references),
// tallies (unique names and ids, resolvable filters and cells) and settings.
package validation
