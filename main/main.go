package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/table"

	"github.com/peridyn/porogrid"
	"github.com/peridyn/porogrid/io"
	"github.com/peridyn/porogrid/rand"
)

func main() {
	var (
		configStr, tableStr, exampleConfig string
		show                               bool
		logPath                            string
	)
	vars := map[string]*string{
		"Config":        &configStr,
		"Table":         &tableStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&configStr, "Config", "",
		"Configuration file for a single [Simulation] run.",
	)
	flag.StringVar(
		&tableStr, "Table", "",
		"Parameter table for batch runs. One run per row, whitespace "+
			"columns: Lx Ly Dx Phi M Seed. A zero seed means seed from "+
			"the clock.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Simulation'.",
	)
	flag.BoolVar(
		&show, "Show", false,
		"Open each written VTK file with paraview, if it is on the PATH. "+
			"Failures here are advisory: the output file is complete "+
			"either way.",
	)
	flag.StringVar(
		&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.",
	)

	flag.Parse()

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		defer lf.Close()
	}

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Config":
		configMain(configStr, show)
	case "Table":
		tableMain(tableStr, show)
	case "ExampleConfig":
		switch exampleConfig {
		case "Simulation":
			fmt.Println(io.ExampleSimulationFile)
		default:
			log.Fatalf("Unrecognized config type '%s'.", exampleConfig)
		}
	}
}

// getModeName returns the single mode whose flag was set and fails
// descriptively otherwise.
func getModeName(vars map[string]*string) (string, error) {
	n := 0
	modeStr := ""

	for name, val := range vars {
		if *val != "" {
			n++
			modeStr = name
		}
	}

	if n != 1 {
		return "", fmt.Errorf(
			"Given %d mode flags, but exactly 1 of -Config, -Table, "+
				"-ExampleConfig is required.", n,
		)
	}
	return modeStr, nil
}

func configMain(fname string, show bool) {
	wrap := io.DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Simulation

	if !con.ValidLx() {
		log.Fatal("Invalid/non-existent 'Lx' value.")
	} else if !con.ValidLy() {
		log.Fatal("Invalid/non-existent 'Ly' value.")
	} else if !con.ValidDx() {
		log.Fatal("Invalid/non-existent 'Dx' value.")
	} else if !con.ValidPhi() {
		log.Fatal("Invalid 'Phi' value: must be in [0, 1].")
	} else if !con.ValidM() {
		log.Fatal("Invalid/non-existent 'M' value.")
	} else if !con.ValidThreads() {
		log.Fatal("Invalid 'Threads' value.")
	}

	if con.ValidLogFile() {
		lf, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		defer lf.Close()
	}

	opt := porogrid.Options{
		Threads:   con.Threads,
		Output:    con.Output,
		TableFile: con.TableFile,
	}
	if con.Seed != 0 {
		opt.Gen = rand.New(rand.Default, uint64(con.Seed))
	}

	p := porogrid.Params{
		Lx: con.Lx, Ly: con.Ly, Dx: con.Dx, Phi: con.Phi, M: con.M,
	}
	res, err := porogrid.Run(p, opt)
	if err != nil {
		log.Fatal(err.Error())
	}

	if show {
		showFile(res.OutputPath)
	}
}

func tableMain(fname string, show bool) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3, 4, 5}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	lxs, lys, dxs := cols[0], cols[1], cols[2]
	phis, ms, seeds := cols[3], cols[4], cols[5]

	for row := range lxs {
		log.Printf("Run %d/%d", row+1, len(lxs))

		opt := porogrid.Options{}
		if seeds[row] != 0 {
			opt.Gen = rand.New(rand.Default, uint64(int64(seeds[row])))
		}

		p := porogrid.Params{
			Lx: lxs[row], Ly: lys[row], Dx: dxs[row],
			Phi: phis[row], M: ms[row],
		}
		res, err := porogrid.Run(p, opt)
		if err != nil {
			log.Fatal(err.Error())
		}

		if show {
			showFile(res.OutputPath)
		}
	}
}

// showFile hands the written file to paraview. This is a convenience only:
// if paraview is missing or refuses to start, the file is still valid and
// the run still succeeded.
func showFile(fname string) {
	bin, err := exec.LookPath("paraview")
	if err != nil {
		log.Printf("Could not find paraview on the PATH. "+
			"Open %s manually.", fname)
		return
	}

	abs, err := filepath.Abs(fname)
	if err != nil {
		abs = fname
	}

	if err := exec.Command(bin, abs).Start(); err != nil {
		log.Printf("Could not launch paraview: %s", err.Error())
		return
	}
	log.Printf("Opening %s with paraview...", abs)
}
