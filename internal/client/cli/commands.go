package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/models"
	"github.com/HassanIT2003/Planting-Optimisation-Tool/internal/client/workflow"
)

// Farms lists the ids of all farms in the session registry.
func (a *App) Farms(ctx context.Context) error {
	ids, err := a.store.IDs(ctx)
	if err != nil {
		printlnFn("Could not list farms:", err.Error())
		return err
	}
	if len(ids) == 0 {
		printlnFn("No farms registered yet. Type 'new' to start a draft.")
		return nil
	}
	for _, id := range ids {
		printlnFn("  farm", id)
	}
	return nil
}

// Select activates the registered farm with the given id.
func (a *App) Select(ctx context.Context, id string) error {
	if err := a.controller.SelectProfile(ctx, id); err != nil {
		if errors.Is(err, workflow.ErrProfileUnavailable) {
			printlnFn("Farm", id, "could not be loaded.")
		} else {
			printlnFn("Selection failed:", err.Error())
		}
		return err
	}
	printlnFn("Farm", id, "selected.")
	a.printDraft()
	return nil
}

// NewDraft starts a fresh, empty profile draft.
func (a *App) NewDraft(ctx context.Context) error {
	if err := a.controller.SelectProfile(ctx, models.DraftID); err != nil {
		return err
	}
	printlnFn("Started a new farm draft. Use 'set' or 'area' to fill it in.")
	return nil
}

// Clear drops the current selection.
func (a *App) Clear(ctx context.Context) error {
	if err := a.controller.SelectProfile(ctx, ""); err != nil {
		return err
	}
	printlnFn("Selection cleared.")
	return nil
}

// Set stages one draft field value.
func (a *App) Set(ctx context.Context, field, value string) error {
	if err := a.controller.SetField(field, value); err != nil {
		if errors.Is(err, workflow.ErrUnknownField) {
			printlnFn("Unknown field:", field)
			printlnFn("Fields: latitude, longitude, ph, soil, rainfall, temperature, altitude")
		} else {
			printlnFn("Could not set field:", err.Error())
		}
		return err
	}
	return nil
}

// Area stages a mock environment for the queried area.
func (a *App) Area(ctx context.Context, query string) error {
	if err := a.controller.MockFromArea(ctx, query); err != nil {
		if errors.Is(err, workflow.ErrEmptyQuery) {
			printlnFn("Usage: area <query>")
		} else {
			printlnFn("Area lookup failed:", err.Error())
		}
		return err
	}
	printlnFn("Environment for", fmt.Sprintf("%q", query), "staged:")
	a.printDraft()
	return nil
}

// Save registers the current draft, remotely when possible.
func (a *App) Save(ctx context.Context) error {
	res, err := a.controller.SaveDraft(ctx)
	if err != nil {
		if errors.Is(err, workflow.ErrNotDraft) {
			printlnFn("Nothing to save. Type 'new' to start a draft first.")
		} else {
			printlnFn("Save failed:", err.Error())
		}
		return err
	}
	if res.Remote {
		printlnFn("Farm registered as", res.ID+".")
	} else {
		printlnFn("Backend unreachable; farm saved locally as", res.ID+".")
	}
	return nil
}

// Generate fetches species recommendations for the selected farm.
func (a *App) Generate(ctx context.Context) error {
	if err := a.controller.Generate(ctx); err != nil {
		if errors.Is(err, workflow.ErrNoProfileSelected) {
			printlnFn("Select a saved farm first ('farms', then 'select <id>').")
		} else {
			printlnFn("Recommendation failed:", err.Error())
		}
		return err
	}
	if a.controller.ResultsEstimated() {
		printlnFn("Note: showing estimated values; live analysis was unavailable.")
	}
	return nil
}

// ExportReport writes the current result set to a report document.
func (a *App) ExportReport(ctx context.Context) error {
	location, err := a.controller.Export(ctx)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNoResults):
			printlnFn("No results to export. Run 'generate' first.")
		case errors.Is(err, workflow.ErrExportUnavailable):
			printlnFn("Export is not configured.")
		default:
			printlnFn("Export failed:", err.Error())
		}
		return err
	}
	printlnFn("Report written to", location)
	return nil
}

// Species searches the species catalogue. An empty query lists everything.
func (a *App) Species(ctx context.Context, query string) error {
	records, err := a.catalogue.Search(ctx, query)
	if err != nil {
		printlnFn("Species search failed:", err.Error())
		return err
	}
	if len(records) == 0 {
		printlnFn("No species match", fmt.Sprintf("%q", query))
		return nil
	}
	for _, r := range records {
		name := r.CommonName
		if name == "" {
			name = r.Name
		} else {
			name = fmt.Sprintf("%s (%s)", name, r.Name)
		}
		printlnFn("  " + name)
	}
	return nil
}

func (a *App) printDraft() {
	d := a.controller.Draft()
	if d.IsZero() {
		return
	}
	printlnFn("  latitude:   ", d.Latitude)
	printlnFn("  longitude:  ", d.Longitude)
	printlnFn("  ph:         ", d.PH)
	printlnFn("  soil:       ", d.SoilType)
	printlnFn("  rainfall:   ", d.Rainfall)
	printlnFn("  temperature:", d.Temperature)
	printlnFn("  altitude:   ", d.Altitude)
}
