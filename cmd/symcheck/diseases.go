package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/symcheck"
)

// Run executes the diseases command.
func (c *DiseasesCmd) Run(deps *Dependencies) error {
	if !deps.Reference.Ready() {
		fmt.Fprintln(deps.Stderr, "Hint: Set SYMCHECK_DATA to a directory or URL containing the reference tables")
		return symcheck.Errorf(symcheck.EUNAVAILABLE, "reference data not available")
	}

	for _, d := range deps.Reference.Diseases() {
		if !c.Symptoms {
			fmt.Fprintln(deps.Stdout, d)
			continue
		}
		tokens := deps.Reference.Symptoms(d)
		names := make([]string, len(tokens))
		for i, t := range tokens {
			names[i] = string(t)
		}
		fmt.Fprintf(deps.Stdout, "%s: %s\n", d, strings.Join(names, ", "))
	}
	return nil
}
