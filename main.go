package main

import (
	"xrayctl/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Execute()
}
