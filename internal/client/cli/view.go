package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
)

// consoleView renders a result set as a list of cards on out.
type consoleView struct {
	out io.Writer
}

func (v *consoleView) ShowResults(farmID string, items []models.SpeciesMatch) {
	fmt.Fprintf(v.out, "Recommendations for farm %s:\n", farmID)
	for _, item := range items {
		name := item.Name
		if item.IsBest {
			name += " (best match)"
		}
		fmt.Fprintf(v.out, "  %s\n", name)
		fmt.Fprintf(v.out, "    Matched: %s\n", item.Matched)
		if len(item.KeyReasons) > 0 {
			fmt.Fprintf(v.out, "    Reasons: %s\n", strings.Join(item.KeyReasons, ", "))
		}
	}
}
