package main

import (
	"github.com/consensys/go-imp/pkg/cmd"
)

func main() {
	cmd.Execute()
}
