// Command raisegrid prints the actuator encoding of one or more squares,
// for checking the board wiring without a full session.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/hardware"
)

func main() {
	grid := flag.Bool("grid", false, "also print the raised-square diagram")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: raisegrid [-grid] square [square ...]")
		os.Exit(2)
	}

	for _, square := range flag.Args() {
		if len(square) != 2 {
			fmt.Fprintf(os.Stderr, "bad square %q\n", square)
			os.Exit(1)
		}
		index := hardware.SquareIndex(square)
		if index < 0 || index > 63 {
			fmt.Fprintf(os.Stderr, "bad square %q\n", square)
			os.Exit(1)
		}
		fmt.Printf("%s: decimal %d binary %s\n", square, index, hardware.IndexBinary(index))
		if *grid {
			fmt.Print(hardware.RaisedSquareGrid(square))
		}
	}
}
