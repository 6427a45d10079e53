package domain

// RunModeFixedSource emits particles from the prescribed source instead of a fission chain.
const RunModeFixedSource = "fixed source"

// Settings are the run parameters of the transport solve.
type Settings struct {
	RunMode         string `json:"run_mode" yaml:"run_mode" mapstructure:"run_mode"`
	Batches         int    `json:"batches" yaml:"batches" mapstructure:"batches"`
	Particles       int    `json:"particles" yaml:"particles" mapstructure:"particles"`
	Inactive        int    `json:"inactive" yaml:"inactive" mapstructure:"inactive"`
	PhotonTransport bool   `json:"photon_transport" yaml:"photon_transport" mapstructure:"photon_transport"`
	Source          Source `json:"source" yaml:"source" mapstructure:"source"`
}
