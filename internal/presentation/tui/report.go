package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/tally"
)

// Report summarises a built model as markdown: shell radii, materials and
// the tally request grouped by kind.
func Report(m *domain.Model) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Blanket model `%s`\n\n", m.Name)

	sb.WriteString("## Geometry\n\n")
	sb.WriteString("| Cell | Material | Inner (cm) | Outer (cm) | Thickness (cm) |\n")
	sb.WriteString("|---|---|---:|---:|---:|\n")
	radii := m.Geometry.Radii()
	for i, c := range m.Geometry.Cells {
		inner, thickness := "", ""
		if i > 0 && i-1 < len(radii) {
			inner = fmt.Sprintf("%.4f", radii[i-1])
		}
		outer := ""
		if i < len(radii) {
			outer = fmt.Sprintf("%.4f", radii[i])
			if i > 0 {
				thickness = fmt.Sprintf("%g", roundThickness(radii[i]-radii[i-1]))
			}
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", c.Name, c.Material, inner, outer, thickness)
	}
	if n := len(m.Geometry.Surfaces); n > 0 {
		major := m.Geometry.Surfaces[0].MajorRadius
		fmt.Fprintf(&sb, "\nMajor radius %g cm, vacuum boundary at %.4f cm.\n", major, m.Geometry.Surfaces[n-1].MinorRadius)
	}

	sb.WriteString("\n## Materials\n\n")
	sb.WriteString("| ID | Name | Density (g/cm³) | Temperature (K) | Constituents |\n")
	sb.WriteString("|---:|---|---:|---:|---|\n")
	for _, mat := range m.Materials {
		parts := make([]string, len(mat.Constituents))
		for i, c := range mat.Constituents {
			parts[i] = fmt.Sprintf("%s %g", c.Name, c.Fraction)
		}
		fmt.Fprintf(&sb, "| %d | %s | %g | %g | %s |\n",
			mat.ID, mat.Name, mat.Density.Value, mat.Temperature, strings.Join(parts, ", "))
	}

	sb.WriteString("\n## Settings\n\n")
	fmt.Fprintf(&sb, "- Batches: %d (%d inactive)\n", m.Settings.Batches, m.Settings.Inactive)
	fmt.Fprintf(&sb, "- Particles per batch: %d\n", m.Settings.Particles)
	fmt.Fprintf(&sb, "- Photon transport: %t\n", m.Settings.PhotonTransport)

	sb.WriteString("\n## Tallies\n\n")
	counts := tallyCounts(m)
	fmt.Fprintf(&sb, "%d tallies over %d filters.\n\n", len(m.Tallies), len(m.Filters))
	for _, k := range []string{"breeding", "flux", "heating", "spectrum"} {
		fmt.Fprintf(&sb, "- %s: %d\n", k, counts[k])
	}

	return sb.String()
}

func tallyCounts(m *domain.Model) map[string]int {
	counts := make(map[string]int)
	for _, t := range m.Tallies {
		switch {
		case t.Name == tally.TBRChannelName || t.Name == tally.TBRTankName:
			counts["breeding"]++
		case strings.HasPrefix(t.Name, tally.FluxName("")):
			counts["flux"]++
		case strings.HasPrefix(t.Name, tally.SpectrumName("")):
			counts["spectrum"]++
		default:
			if _, _, _, ok := tally.ParseHeatingName(t.Name); ok {
				counts["heating"]++
			}
		}
	}
	return counts
}

// roundThickness trims float noise from radius differences.
func roundThickness(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
