package io

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Domain extent along x and y. Both must be positive.
Lx = 10.0
Ly = 10.0

# Lattice spacing. The grid has floor(Lx/Dx)+1 by floor(Ly/Dx)+1 points,
# so a domain smaller than Dx still gets a single row or column.
Dx = 0.5

# Target porosity: the fraction of bonds broken before the simulation
# starts. Must be in [0, 1]. The realized porosity of a finished run is a
# random outcome close to, but not exactly, this value.
Phi = 0.15

# Horizon factor. The horizon radius is M*Dx: particle pairs farther apart
# than that never form a bond. Common peridynamic practice is M ~ 3.
M = 3.0

#######################
# Optional Parameters #
#######################

# Seed for the random generator. Runs with the same seed reproduce the same
# damage exactly. If unset or zero, the run is seeded from the clock.
# Seed = 42

# Output file path. If unset, the file is named after the parameters
# (e.g. porosity_Lx10_phi15.vtk) in the working directory.
# Output = out/porosity.vtk

# If set, also write an x/y/damage column table next to the VTK output.
# scripts/damage_profile.go plots these files.
# TableFile = out/damage.txt

# Number of threads used by the neighbor count. Default is 1.
# Threads = 4

# Location to write log statements to. Default is stderr.
# LogFile = log.out`
)

// SimulationConfig is the [Simulation] section of a run configuration file.
type SimulationConfig struct {
	// Required
	Lx, Ly float64
	Dx     float64
	Phi    float64
	M      float64

	// Optional
	Seed      int64
	Output    string
	TableFile string
	Threads   int
	LogFile   string
}

// SimulationWrapper is the gcfg target struct for simulation files.
type SimulationWrapper struct {
	Simulation SimulationConfig
}

// DefaultSimulationWrapper returns a wrapper with the optional parameters
// set to their defaults.
func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.Threads = 1
	return &SimulationWrapper{con}
}

func (con *SimulationConfig) ValidLx() bool {
	return con.Lx > 0
}
func (con *SimulationConfig) ValidLy() bool {
	return con.Ly > 0
}
func (con *SimulationConfig) ValidDx() bool {
	return con.Dx > 0
}
func (con *SimulationConfig) ValidPhi() bool {
	return con.Phi >= 0 && con.Phi <= 1
}
func (con *SimulationConfig) ValidM() bool {
	return con.M > 0
}
func (con *SimulationConfig) ValidThreads() bool {
	return con.Threads > 0
}
func (con *SimulationConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
