package main

import "github.com/pashafst/png-secret/internal/cli"

func main() {
	cli.Execute()
}
