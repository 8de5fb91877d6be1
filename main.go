// Package main is the entry point for the bilihot application.
package main

import (
	"github.com/bilihot/bilihot/cmd"
	"github.com/bilihot/bilihot/config"
	"github.com/bilihot/bilihot/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
