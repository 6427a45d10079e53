package domain

// Particle is a transported species.
type Particle string

const (
	Neutron  Particle = "neutron"
	Photon   Particle = "photon"
	Electron Particle = "electron"
	Positron Particle = "positron"
)
