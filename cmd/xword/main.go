package main

import "github.com/mcoot/crosswordbuilder/internal/cli"

func main() {
	cli.Execute()
}
