// Command minire compiles patterns and matches inputs against them.
package main

import (
	"os"

	"github.com/coregx/minire/cmd/minire/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
