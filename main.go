// Package main is the entry point for the liberta application.
package main

import (
	"github.com/liberta-cli/liberta/cmd"
	"github.com/liberta-cli/liberta/config"
	"github.com/liberta-cli/liberta/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
