package io

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func readConfig(t *testing.T, text string) *SimulationConfig {
	fname := filepath.Join(t.TempDir(), "sim.config")
	if err := ioutil.WriteFile(fname, []byte(text), 0666); err != nil {
		t.Fatal(err.Error())
	}

	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		t.Fatal(err.Error())
	}
	return &wrap.Simulation
}

func TestReadSimulationConfig(t *testing.T) {
	con := readConfig(t, `[Simulation]
Lx = 4.0
Ly = 2.0
Dx = 0.5
Phi = 0.25
M = 3.0
Seed = 7
Output = out.vtk
`)

	assert.Equal(t, 4.0, con.Lx)
	assert.Equal(t, 2.0, con.Ly)
	assert.Equal(t, 0.5, con.Dx)
	assert.Equal(t, 0.25, con.Phi)
	assert.Equal(t, 3.0, con.M)
	assert.Equal(t, int64(7), con.Seed)
	assert.Equal(t, "out.vtk", con.Output)
	// Defaults survive for unset optional parameters.
	assert.Equal(t, 1, con.Threads)
	assert.Equal(t, "", con.TableFile)

	assert.True(t, con.ValidLx())
	assert.True(t, con.ValidLy())
	assert.True(t, con.ValidDx())
	assert.True(t, con.ValidPhi())
	assert.True(t, con.ValidM())
	assert.True(t, con.ValidThreads())
	assert.False(t, con.ValidLogFile())
}

func TestExampleSimulationFileParses(t *testing.T) {
	con := readConfig(t, ExampleSimulationFile)

	assert.True(t, con.ValidLx())
	assert.True(t, con.ValidLy())
	assert.True(t, con.ValidDx())
	assert.True(t, con.ValidPhi())
	assert.True(t, con.ValidM())
	assert.True(t, con.ValidThreads())
}

func TestConfigValidation(t *testing.T) {
	con := readConfig(t, `[Simulation]
Lx = -1
Ly = 0
Dx = 0
Phi = 1.5
M = 0
Threads = 0
`)

	assert.False(t, con.ValidLx())
	assert.False(t, con.ValidLy())
	assert.False(t, con.ValidDx())
	assert.False(t, con.ValidPhi())
	assert.False(t, con.ValidM())
	assert.False(t, con.ValidThreads())
}
