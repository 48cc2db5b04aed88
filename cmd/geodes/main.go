// Command geodes scores robot-factory blueprints.
//
//	geodes solve input.txt                 # weighted sum at 24 minutes
//	geodes solve input.txt --mode product  # product of the first three at 32 minutes
//	geodes steps input.txt --blueprint 1   # minute-by-minute frontier trace
package main

import (
	"fmt"
	"os"
)

func main() {
	a := &app{}
	if err := a.execute(newRootCmd(a)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
