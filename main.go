// Package main is the entry point for kaltdl.
package main

import (
	"github.com/kaltdl/kaltdl/cmd"
	"github.com/kaltdl/kaltdl/config"
	"github.com/kaltdl/kaltdl/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
