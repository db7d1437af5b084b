// Command rootfind approximates polynomial roots from the command line.
//
// Every subcommand reads the polynomial from --coeffs (highest degree
// first) and the stopping rule from --tol, --max-iter, --strict or a YAML
// file given by --config:
//
//	rootfind newton --coeffs 1,0,-4 --x0 8
//	rootfind secant --x1 -10 --x2 -7 --json
//	rootfind bisect --a -9 --b 12 --plot bisect.png
//	rootfind durand-kerner --coeffs 1,2,12,24 --verbose
//	rootfind gallery --out roots.png --domain
//	rootfind policy --config policy.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
