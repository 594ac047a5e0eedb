package main

import (
	"fmt"
	"os"

	"github.com/damedic/xpath-temporal/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xqtemporal:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
