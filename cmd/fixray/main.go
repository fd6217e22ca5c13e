package main

import (
	"github.com/calebcase/fixray/internal/cli"
)

func main() {
	cli.Execute()
}
