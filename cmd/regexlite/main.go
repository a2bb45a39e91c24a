package main

import "github.com/twinfer/regexlite/internal/cli"

func main() {
	cli.Execute()
}
