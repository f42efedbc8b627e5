package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/symcheck"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	req := &symcheck.Request{
		Symptoms:       c.Symptoms,
		CustomSymptoms: c.Text,
	}

	analysis, err := deps.Checker.Check(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", symcheck.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(deps.Stdout, analysis)
	return nil
}

func printAnalysis(w io.Writer, a *symcheck.Analysis) {
	switch a.Source {
	case symcheck.SourceRemote:
		fmt.Fprintln(w, a.Text)
	default:
		if len(a.Conditions) == 0 {
			fmt.Fprintln(w, "No matching conditions found. Consult a healthcare provider if symptoms persist.")
			break
		}
		if a.Source == symcheck.SourceFallback {
			fmt.Fprintln(w, "Reference data unavailable, showing common conditions.")
		}
		for _, m := range a.Conditions {
			printMatch(w, m)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, a.Disclaimer)
}

func printMatch(w io.Writer, m symcheck.Match) {
	name := m.Disease
	if m.Info != nil && m.Info.Name != "" {
		name = m.Info.Name
	}
	fmt.Fprintf(w, "%s  %.1f%% (%d/%d)\n", name, m.Percentage, m.Matches, m.Total)

	if m.Info != nil {
		if m.Info.Urgency != "" {
			fmt.Fprintf(w, "  urgency: %s\n", m.Info.Urgency)
		}
		if m.Info.Description != "" {
			fmt.Fprintf(w, "  %s\n", m.Info.Description)
		}
	}
	if len(m.Precautions) > 0 {
		fmt.Fprintf(w, "  precautions: %s\n", strings.Join(m.Precautions, "; "))
	} else if m.Info != nil && m.Info.Advice != "" {
		fmt.Fprintf(w, "  advice: %s\n", m.Info.Advice)
	}
}
