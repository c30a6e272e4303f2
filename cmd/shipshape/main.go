// main is the entry point for the shipshape CLI.
package main

import (
	"github.com/shipshapehq/shipshape/cmd"
	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/internal/iostore"
)

func main() {
	err := cmd.Execute()

	iostore.CloseStores()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogFatal("command failed", err)
	}
}
