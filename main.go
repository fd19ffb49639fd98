// main is the entry point of the scorecard CLI.
package main

import (
	"github.com/huangsam/scorecard/cmd"
	"github.com/huangsam/scorecard/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
