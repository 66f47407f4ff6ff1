package main

import "github.com/joshgarnett/xsd-classgen/cmd/xscgen/cmd"

func main() {
	cmd.Execute()
}
