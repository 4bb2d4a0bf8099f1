// main is the entry point for the attribution CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/attribution/cmd"
	"github.com/huangsam/attribution/internal/iocache"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Warn stop profiling:", stopErr)
	}
	iocache.CloseStores()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
