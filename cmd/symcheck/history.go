package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/symcheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.ClearChecks(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", symcheck.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Cleared recent checks.")
		return nil
	}

	checks, err := deps.History.RecentChecks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", symcheck.ErrorMessage(err))
		return err
	}

	if len(checks) == 0 {
		fmt.Fprintln(deps.Stdout, "No recent checks. Use 'symcheck check' to run one.")
		return nil
	}

	for _, ch := range checks {
		parts := make([]string, 0, len(ch.Symptoms)+1)
		parts = append(parts, ch.Symptoms...)
		if ch.CustomSymptoms != "" {
			parts = append(parts, fmt.Sprintf("%q", ch.CustomSymptoms))
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %d conditions  %s\n",
			ch.CreatedAt.Local().Format(time.DateTime),
			ch.Source,
			ch.ConditionsCount,
			strings.Join(parts, ", "),
		)
	}
	return nil
}
