package main

import "github.com/vitalslab/vitals-cli/internal/cli"

func main() {
	cli.Execute()
}
