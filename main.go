package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/overmindtech/harvester/cmd"
)

func main() {
	cmd.Execute()
}
