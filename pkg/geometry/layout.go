package geometry

import "github.com/aretw0/blanket/pkg/materials"

// Layer binds one cell to its outer surface and fill material.
type Layer struct {
	Cell     string
	Surface  string // outer boundary of the cell
	Material string
}

// Layout is the fixed radial stack, plasma chamber outwards. Layer i is
// bounded by surface i-1 (outside) and surface i (inside).
var Layout = [...]Layer{
	{Cell: "inner", Surface: "fw_inner", Material: materials.Chamber},
	{Cell: "fw", Surface: "str1_inner", Material: materials.FirstWall},
	{Cell: "str1", Surface: "flibe1_inner", Material: materials.Structure},
	{Cell: "flibe1", Surface: "be_inner", Material: materials.Breeder},
	{Cell: "nm", Surface: "str2_inner", Material: materials.Multiplier},
	{Cell: "str2", Surface: "flibe2_inner", Material: materials.Structure},
	{Cell: "flibe2", Surface: "str3_inner", Material: materials.Breeder},
	{Cell: "str3", Surface: "str3_outer", Material: materials.Structure},
}

// Shells returns the cell names of the material layers, excluding the plasma chamber.
func Shells() []string {
	out := make([]string, 0, len(Layout)-1)
	for _, l := range Layout[1:] {
		out = append(out, l.Cell)
	}
	return out
}
