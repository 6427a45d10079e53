package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/blanket/pkg/domain"
)

// Overlay marks cells to emphasise on the diagram.
type Overlay struct {
	Highlight []string // cell names
}

// GenerateMermaid produces a Mermaid flowchart of the radial layer stack.
// Cells are ordered from the plasma outwards and joined by the surface they
// share, labelled with its minor radius:
// - Chamber (innermost cell): ((Circle))
// - Shells: [Rectangle] with the cell and material names
// - Outside world beyond the vacuum boundary: [/Parallelogram/]
func GenerateMermaid(g domain.Geometry, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	surfaces := make(map[int]domain.Surface, len(g.Surfaces))
	for _, s := range g.Surfaces {
		surfaces[s.ID] = s
	}

	for i, c := range g.Cells {
		id := sanitizeMermaidID(c.Name)
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> %s\"%s\n", id, opener, c.Name, c.Material, closer))

		if i == 0 {
			continue
		}
		prev := sanitizeMermaidID(g.Cells[i-1].Name)
		if s, ok := surfaces[c.Region.Inner]; ok {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s r=%.2f\" --> %s\n", prev, s.Name, s.MinorRadius, id))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, id))
		}
	}

	if n := len(g.Cells); n > 0 {
		last := g.Cells[n-1]
		if s, ok := surfaces[last.Region.Outer]; ok && s.Boundary == domain.BoundaryVacuum {
			sb.WriteString("    outside[/\"vacuum\"/]\n")
			sb.WriteString(fmt.Sprintf("    %s -. \"%s r=%.2f\" .-> outside\n", sanitizeMermaidID(last.Name), s.Name, s.MinorRadius))
		}
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light fills in both themes.
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Highlight {
			id := sanitizeMermaidID(name)
			if id == "" || seen[id] {
				continue
			}
			if _, ok := g.Cell(name); !ok {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s highlight;\n", id))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}
