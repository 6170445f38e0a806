package main

import (
	"fmt"

	"hostscan/cmd"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Execute(fmt.Sprintf("%s (%s) built on %s", version, commit, date))
}
