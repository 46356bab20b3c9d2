/*package io reads porogrid configuration files and writes simulation
output.

The output format is legacy-VTK POLYDATA: every lattice particle is written
as a point and as its own one-point vertex cell, and the damage field is
attached as a point scalar. ParaView and VisIt open these files directly.
The three per-point blocks (POINTS, VERTICES, damage scalars) all use
lattice order.*/
package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/peridyn/porogrid/lattice"
)

// OutputName derives the canonical output file name from the domain length
// and target porosity, e.g. porosity_Lx10_phi15.vtk. Both values are
// truncated toward zero, so runs whose parameters only differ past the
// truncation share a name.
func OutputName(Lx, phi float64) string {
	return fmt.Sprintf("porosity_Lx%d_phi%d.vtk", int(Lx), int(phi*100))
}

// WritePolyData writes the lattice and its damage field to fname. A failed
// write aborts immediately and makes no guarantee about the partial file's
// contents.
func WritePolyData(
	fname string, lat *lattice.Lattice, damage []float64,
) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("Could not open '%s' for writing: %s",
			fname, err.Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := lat.Len()

	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "Peridynamic porous pre-damage\n")
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET POLYDATA\n")

	// z is fixed at 0 for the 2D case.
	fmt.Fprintf(w, "POINTS %d float\n", n)
	for i := range lat.Particles {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n",
			lat.Particles[i][0], lat.Particles[i][1], 0.0)
	}

	fmt.Fprintf(w, "VERTICES %d %d\n", n, 2*n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "1 %d\n", i)
	}

	fmt.Fprintf(w, "POINT_DATA %d\n", n)
	fmt.Fprintf(w, "SCALARS damage float 1\n")
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for i := range damage {
		fmt.Fprintf(w, "%.6f\n", damage[i])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("Could not write '%s': %s", fname, err.Error())
	}
	return nil
}

// WriteDamageTable writes whitespace-separated x, y, damage columns to
// fname, one row per particle in lattice order. The format round-trips
// through table.ReadTable.
func WriteDamageTable(
	fname string, lat *lattice.Lattice, damage []float64,
) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("Could not open '%s' for writing: %s",
			fname, err.Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# x y damage\n")
	for i := range lat.Particles {
		fmt.Fprintf(w, "%.6f %.6f %.6f\n",
			lat.Particles[i][0], lat.Particles[i][1], damage[i])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("Could not write '%s': %s", fname, err.Error())
	}
	return nil
}
