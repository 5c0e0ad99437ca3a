package main

import "github.com/OpenTraceLab/kicad-bom/cmd/kicad-bom/cmd"

func main() {
	cmd.Execute()
}
