package main

import (
	"os"

	"max.ks1230/gastos-client/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
