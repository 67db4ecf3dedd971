package main

import (
	"os"
	_ "time/tzdata"

	"github.com/yanqian/astro-profile/internal/interface/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
