package main

import (
	"edid-forge/cli"
)

func main() {
	cli.Start()
}
