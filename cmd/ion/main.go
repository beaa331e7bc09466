package main

import (
	"os"

	"github.com/amw-zero/ion/cmd/ion/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
