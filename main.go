package main

import (
	_ "embed"

	"github.com/haierkeys/smart-note-api/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
