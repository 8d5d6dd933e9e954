package main

import (
	"github.com/simtools/pedal2go/cmd"
)

func main() {
	cmd.Execute()
}
