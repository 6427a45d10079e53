/*
Package geometry derives the nested toroidal shells of the blanket and builds
the surfaces and cells between them.

The minor radius of the plasma-facing surface follows from inverting the torus
surface area, A = 4·π²·R·r. Each further shell adds a fixed thickness:

	r0 = A / (4·π²·R)
	ri = r(i-1) + ti

Build turns the eight radii into eight z-axis tori and eight cells. The cell
to material mapping is the fixed Layout, innermost first.
*/
package geometry
