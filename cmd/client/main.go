package main

import "github.com/credkarma/credkarma/internal/cli"

var (
	version   string
	buildDate string
)

func main() {
	cli.Execute(version, buildDate)
}
