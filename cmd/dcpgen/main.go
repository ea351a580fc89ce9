// Command dcpgen generates random convex-optimization expressions for
// practising Disciplined Convex Programming rules.
//
//	dcpgen generate --curvature concave --difficulty Hard --count 5
//	dcpgen quiz --count 10 --json
//	dcpgen catalog --yaml > table.yaml
//
// Settings come from an optional YAML file (--config), DCPGEN_* environment
// variables and finally command-line flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
