package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/logging"
)

// ReportExporter renders a result set into a plain-text report and saves it
// through the configured Storage.
type ReportExporter struct {
	storage Storage
	log     logging.Logger
}

// NewReportExporter builds a ReportExporter over the given storage.
func NewReportExporter(storage Storage, log logging.Logger) *ReportExporter {
	return &ReportExporter{storage: storage, log: log}
}

// Export writes the report for the given farm and returns its location. The
// item set is rendered exactly as received.
func (e *ReportExporter) Export(ctx context.Context, farmID string, items []models.SpeciesMatch) (string, error) {
	name := fmt.Sprintf("recommendation_report_farm_%s.txt", farmID)

	location, err := e.storage.Save(ctx, name, []byte(Render(farmID, items)))
	if err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	e.log.Info(ctx, "report saved", "farm_id", farmID, "location", location)
	return location, nil
}

// Render produces the textual report body.
func Render(farmID string, items []models.SpeciesMatch) string {
	var b strings.Builder
	b.WriteString("Species Recommendation Report\n")
	fmt.Fprintf(&b, "Farm ID: %s\n", farmID)

	for _, item := range items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Species: %s", item.Name)
		if item.IsBest {
			b.WriteString(" (best match)")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Matched: %s\n", item.Matched)
		reasons := "N/A"
		if len(item.KeyReasons) > 0 {
			reasons = strings.Join(item.KeyReasons, ", ")
		}
		fmt.Fprintf(&b, "Key Reasons: %s\n", reasons)
		fmt.Fprintf(&b, "Score: %g\n", item.Score)
	}
	return b.String()
}
