package blanket

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/aretw0/blanket/pkg/geometry"
	"github.com/aretw0/blanket/pkg/materials"
	"github.com/aretw0/blanket/pkg/source"
	"github.com/aretw0/blanket/pkg/tally"
)

// Case gathers the tunable parameters of one blanket calculation.
// Every field has a default reproducing the reference case.
type Case struct {
	Name      string         `mapstructure:"name" yaml:"name" json:"name" validate:"required"`
	Geometry  GeometryParams `mapstructure:"geometry" yaml:"geometry" json:"geometry"`
	Materials MaterialParams `mapstructure:"materials" yaml:"materials" json:"materials"`
	Source    SourceParams   `mapstructure:"source" yaml:"source" json:"source"`
	Settings  SettingsParams `mapstructure:"settings" yaml:"settings" json:"settings"`
	Tallies   TallyParams    `mapstructure:"tallies" yaml:"tallies" json:"tallies"`
}

// GeometryParams size the nested tori.
type GeometryParams struct {
	FirstWallArea float64   `mapstructure:"first_wall_area" yaml:"first_wall_area" json:"first_wall_area" validate:"gt=0"` // cm²
	MajorRadius   float64   `mapstructure:"major_radius" yaml:"major_radius" json:"major_radius" validate:"gt=0"`          // cm
	Thicknesses   []float64 `mapstructure:"thicknesses" yaml:"thicknesses" json:"thicknesses" validate:"len=7,dive,gt=0"` // cm, fw outwards
}

// MaterialParams tune the catalog.
type MaterialParams struct {
	Temperature   float64 `mapstructure:"temperature" yaml:"temperature" json:"temperature" validate:"gt=0"` // K
	Li6Enrichment float64 `mapstructure:"li6_enrichment" yaml:"li6_enrichment" json:"li6_enrichment" validate:"gt=0,lte=1"`
}

// SourceParams describe the D-T peak.
type SourceParams struct {
	PeakEnergy     float64 `mapstructure:"peak_energy" yaml:"peak_energy" json:"peak_energy" validate:"gt=0"` // eV
	MassRatio      float64 `mapstructure:"mass_ratio" yaml:"mass_ratio" json:"mass_ratio" validate:"gt=0"`
	IonTemperature float64 `mapstructure:"ion_temperature" yaml:"ion_temperature" json:"ion_temperature" validate:"gt=0"` // eV
}

// SettingsParams are the run controls.
type SettingsParams struct {
	Batches         int  `mapstructure:"batches" yaml:"batches" json:"batches" validate:"gt=0"`
	Particles       int  `mapstructure:"particles" yaml:"particles" json:"particles" validate:"gt=0"`
	Inactive        int  `mapstructure:"inactive" yaml:"inactive" json:"inactive" validate:"gte=0,ltfield=Batches"`
	PhotonTransport bool `mapstructure:"photon_transport" yaml:"photon_transport" json:"photon_transport"`
}

// TallyParams select the tally binning.
type TallyParams struct {
	GroupStructure string `mapstructure:"group_structure" yaml:"group_structure" json:"group_structure" validate:"required"`
}

// DefaultCaseName names the reference case.
const DefaultCaseName = "reference"

// DefaultCase returns the reference case.
func DefaultCase() Case {
	return Case{
		Name: DefaultCaseName,
		Geometry: GeometryParams{
			FirstWallArea: geometry.DefaultFirstWallArea,
			MajorRadius:   geometry.DefaultMajorRadius,
			Thicknesses:   append([]float64(nil), geometry.DefaultThicknesses...),
		},
		Materials: MaterialParams{
			Temperature:   materials.DefaultTemperature,
			Li6Enrichment: materials.DefaultLi6Enrichment,
		},
		Source: SourceParams{
			PeakEnergy:     source.DefaultPeakEnergy,
			MassRatio:      source.DefaultMassRatio,
			IonTemperature: source.DefaultTemperature,
		},
		Settings: SettingsParams{
			Batches:         240,
			Particles:       4200000,
			Inactive:        0,
			PhotonTransport: true,
		},
		Tallies: TallyParams{
			GroupStructure: tally.DefaultGroupStructure,
		},
	}
}

var validate = validator.New()

// Validate checks field ranges and that the shells fit inside the major radius.
func (c Case) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("case validation failed: %w", err)
	}
	if _, err := geometry.SolveChecked(c.Geometry.FirstWallArea, c.Geometry.MajorRadius, c.Geometry.Thicknesses); err != nil {
		return fmt.Errorf("case validation failed: %w", err)
	}
	return nil
}
