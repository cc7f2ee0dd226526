package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/busoc/llh2ecef/coord"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

// run expects the program name followed by latitude (deg), longitude (deg)
// and height above the ellipsoid (km). Arguments are not given to the flag
// package: negative coordinates would be taken for flags.
func run(args []string, w io.Writer) error {
	if len(args) != 4 {
		name := "llh2ecef"
		if len(args) > 0 {
			name = filepath.Base(args[0])
		}
		_, err := fmt.Fprintf(w, "Usage: %s lat long HAE\n", name)
		return err
	}
	g, err := coord.ParseGeodetic(args[1], args[2], args[3])
	if err != nil {
		return err
	}
	e := g.ECEF()
	_, err = fmt.Fprintf(w, "%v\n%v\n%v\n", e.X, e.Y, e.Z)
	return err
}
