// format.go — plain-text rendering of equilibrium profiles for the console.

package equilibrium

import (
	"fmt"
	"strings"
)

const ruleLine = "----------------------------------------------------------------------"

// FormatProfile renders one profile as a fixed-width text block: a header
// with the profile's position in the SPE set, one row per step, the full
// labelled path and the terminal payments.
func FormatProfile(p *Profile, position, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subgame-perfect equilibrium %d of %d\n", position, total)
	b.WriteString(ruleLine + "\n")
	fmt.Fprintf(&b, "%-5s | %-6s | %-8s | %-6s | %-11s | %s\n",
		"Round", "Player", "Scenario", "Action", "Destination", "Payoffs")
	b.WriteString(ruleLine + "\n")

	for _, step := range p.Steps {
		fmt.Fprintf(&b, "%-5d | %-6s | %-8s | %-6s | %-11s | %s\n",
			step.Round, step.PlayerLabel, step.Scenario, step.Action,
			step.Destination, formatPayments(p.PlayerLabels, step.Payoffs))
	}

	b.WriteString(ruleLine + "\n")
	fmt.Fprintf(&b, "Full history:   %s\n", p.FullHistory)
	fmt.Fprintf(&b, "Final payments: %s\n", formatPayments(p.PlayerLabels, p.FinalPayments))

	return b.String()
}

// NavigationHint tells the console user how to page through the SPE set.
func NavigationHint(position, total int) string {
	if total <= 1 {
		return "[q] back to menu"
	}

	return fmt.Sprintf("Profile %d/%d  [n] next  [p] previous  [q] back to menu",
		position, total)
}

// formatPayments renders "J1: 3.00, J2: 1.00" in player-id order.
func formatPayments(labels []string, payments map[string]float64) string {
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s: %.2f", label, payments[label]))
	}

	return strings.Join(parts, ", ")
}
