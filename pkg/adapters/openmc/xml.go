package openmc

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Element layouts of the engine's XML input files.

type materialsFile struct {
	XMLName   xml.Name      `xml:"materials"`
	Materials []materialXML `xml:"material"`
}

type materialXML struct {
	ID           int              `xml:"id,attr"`
	Name         string           `xml:"name,attr"`
	Depletable   bool             `xml:"depletable,attr"`
	Temperature  float64          `xml:"temperature,attr"`
	Density      densityXML       `xml:"density"`
	Constituents []constituentXML
}

type densityXML struct {
	Units string  `xml:"units,attr"`
	Value float64 `xml:"value,attr"`
}

type constituentXML struct {
	XMLName xml.Name
	Name    string   `xml:"name,attr"`
	AO      *float64 `xml:"ao,attr,omitempty"`
	WO      *float64 `xml:"wo,attr,omitempty"`
}

// add accumulates f into whichever fraction is set.
func (c *constituentXML) add(f float64) {
	if c.AO != nil {
		*c.AO += f
	}
	if c.WO != nil {
		*c.WO += f
	}
}

type geometryFile struct {
	XMLName  xml.Name     `xml:"geometry"`
	Cells    []cellXML    `xml:"cell"`
	Surfaces []surfaceXML `xml:"surface"`
}

type cellXML struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	Material int    `xml:"material,attr"`
	Region   string `xml:"region,attr"`
	Universe int    `xml:"universe,attr"`
}

type surfaceXML struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr,omitempty"`
	Type     string `xml:"type,attr"`
	Boundary string `xml:"boundary,attr,omitempty"`
	Coeffs   string `xml:"coeffs,attr"`
}

type settingsFile struct {
	XMLName         xml.Name  `xml:"settings"`
	RunMode         string    `xml:"run_mode"`
	Particles       int       `xml:"particles"`
	Batches         int       `xml:"batches"`
	Inactive        int       `xml:"inactive"`
	Source          sourceXML `xml:"source"`
	PhotonTransport bool      `xml:"photon_transport"`
}

type sourceXML struct {
	Particle string   `xml:"particle,attr"`
	Strength float64  `xml:"strength,attr"`
	Space    spaceXML `xml:"space"`
	Angle    distXML  `xml:"angle"`
	Energy   distXML  `xml:"energy"`
}

type spaceXML struct {
	Type   string  `xml:"type,attr"`
	Origin string  `xml:"origin,attr"`
	R      distXML `xml:"r"`
	Phi    distXML `xml:"phi"`
	Z      distXML `xml:"z"`
}

type distXML struct {
	Type       string `xml:"type,attr"`
	Parameters string `xml:"parameters,attr,omitempty"`
}

type talliesFile struct {
	XMLName xml.Name    `xml:"tallies"`
	Filters []filterXML `xml:"filter"`
	Tallies []tallyXML  `xml:"tally"`
}

type filterXML struct {
	ID   int    `xml:"id,attr"`
	Type string `xml:"type,attr"`
	Bins string `xml:"bins"`
}

type tallyXML struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	Filters  string `xml:"filters,omitempty"`
	Nuclides string `xml:"nuclides,omitempty"`
	Scores   string `xml:"scores"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// joinFloats renders a whitespace-separated list, the engine's array syntax.
func joinFloats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
