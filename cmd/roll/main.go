// Package main rolls a dice expression from the command line.
//
// Handy for checking notation without connecting the bot:
//
//	roll 2d6+3
package main

import (
	"flag"
	"fmt"

	"github.com/louisbranch/rankaisija/internal/dice"
	"github.com/louisbranch/rankaisija/internal/platform/config"
	"github.com/louisbranch/rankaisija/internal/random"
)

func main() {
	flag.Parse()
	notation := flag.Arg(0)
	if notation == "" {
		notation = "1d6"
	}

	expr, err := dice.Parse(notation)
	if err != nil {
		config.Exitf("parse %q: %v", notation, err)
	}
	seed, err := random.NewSeed()
	if err != nil {
		config.Exitf("generate seed: %v", err)
	}

	result := dice.Roll(expr, dice.NewSource(seed))
	fmt.Printf("%s: %v = %d\n", expr, result.Rolls, result.Total)
}
