// Package main implements the sre-gateway binary, the setup and
// validation tool for the SRE agent's AWS gateway.
package main

import (
	"os"

	"github.com/YogeshAbnave/sre-project/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
