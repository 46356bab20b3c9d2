// damage_profile plots the binned mean damage against x from a damage
// table written with the TableFile config option. Usage:
//
//	go run damage_profile.go table.txt [bins]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"

	"github.com/peridyn/porogrid/stats"
)

func main() {
	if len(os.Args) != 2 && len(os.Args) != 3 {
		fmt.Println("Usage: damage_profile table.txt [bins]")
		os.Exit(1)
	}
	fname := os.Args[1]

	bins := 20
	if len(os.Args) == 3 {
		var err error
		bins, err = strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	xs, damage := cols[0], cols[2]

	sum := stats.Summarize(damage)
	log.Printf("%d points, mean damage %g (std %g), range [%g, %g]",
		len(damage), sum.Mean, sum.Std, sum.Min, sum.Max)

	centers, means := stats.BinnedMeans(xs, damage, bins)

	plt.Reset()
	plt.Plot(xs, damage, "ok")
	plt.Plot(centers, means, "r", plt.LW(3))
	plt.Show()
}
