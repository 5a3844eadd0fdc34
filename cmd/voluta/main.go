package main

import (
	"os"

	"github.com/voluta/voluta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
