package seed

import (
	"context"
	"fmt"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/errors"

	"github.com/xuri/excelize/v2"
)

const catalogSheet = "Solar System"

var spreadsheetColumns = []struct {
	header string
	width  float64
	value  func(planet.CelestialBody) interface{}
}{
	{"Name", 12, func(b planet.CelestialBody) interface{} { return b.Name }},
	{"Display Order", 14, func(b planet.CelestialBody) interface{} { return b.DisplayOrder }},
	{"Type", 18, func(b planet.CelestialBody) interface{} { return b.PlanetType.Label() }},
	{"Distance (AU)", 14, func(b planet.CelestialBody) interface{} { return b.DistanceFromSunAU }},
	{"Diameter (km)", 14, func(b planet.CelestialBody) interface{} { return b.DiameterKm }},
	{"Mass (Earth = 1)", 16, func(b planet.CelestialBody) interface{} {
		if b.MassEarthRelative == nil {
			return nil
		}
		return *b.MassEarthRelative
	}},
	{"Orbital Period (days)", 20, func(b planet.CelestialBody) interface{} { return b.OrbitalPeriodDays }},
	{"Orbital Period (years)", 20, func(b planet.CelestialBody) interface{} { return b.OrbitalPeriodYears() }},
	{"Eccentricity", 12, func(b planet.CelestialBody) interface{} { return b.OrbitalEccentricity }},
	{"Rotation (hours)", 16, func(b planet.CelestialBody) interface{} { return b.RotationPeriodHours }},
	{"Rotation (days)", 16, func(b planet.CelestialBody) interface{} { return b.RotationPeriodDays() }},
	{"Axial Tilt (deg)", 16, func(b planet.CelestialBody) interface{} { return b.AxialTiltDegrees }},
	{"Diameter (Earth = 1)", 18, func(b planet.CelestialBody) interface{} { return b.DiameterEarthRelative() }},
	{"Albedo", 10, func(b planet.CelestialBody) interface{} { return b.Albedo }},
	{"Color", 10, func(b planet.CelestialBody) interface{} { return b.ColorHex }},
	{"Texture", 22, func(b planet.CelestialBody) interface{} { return b.TextureFilename }},
	{"Dwarf Planet", 12, func(b planet.CelestialBody) interface{} { return yesNo(b.IsDwarfPlanet) }},
	{"Rings", 8, func(b planet.CelestialBody) interface{} { return yesNo(b.HasRings) }},
	{"Moons", 8, func(b planet.CelestialBody) interface{} { return b.MoonCount }},
	{"Active", 8, func(b planet.CelestialBody) interface{} { return yesNo(b.IsActive) }},
	{"Atmosphere", 60, func(b planet.CelestialBody) interface{} { return b.Atmosphere }},
	{"Composition", 80, func(b planet.CelestialBody) interface{} { return b.Composition }},
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// ExportSpreadsheet writes the catalog as an .xlsx workbook with one row per body
func (s *Service) ExportSpreadsheet(ctx context.Context, path string) (int, error) {
	logger := s.logger.With("component", "seed_service", "operation", "export_spreadsheet", "path", path)

	bodies, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, errors.WrapExport("failed to read planets for export", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	if err := writeCatalogSheet(f, bodies); err != nil {
		logger.Error("Failed to build workbook", "error", err)
		return 0, errors.WrapExport("failed to build spreadsheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		logger.Error("Failed to save workbook", "error", err)
		return 0, errors.WrapExport("failed to write spreadsheet to "+path, err)
	}

	logger.Info("Exported planetary spreadsheet", "count", len(bodies))
	return len(bodies), nil
}

func writeCatalogSheet(f *excelize.File, bodies []planet.CelestialBody) error {
	index, err := f.NewSheet(catalogSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range spreadsheetColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(catalogSheet, cell, col.header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(catalogSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(catalogSheet, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, body := range bodies {
		for c, col := range spreadsheetColumns {
			value := col.value(body)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(catalogSheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	return f.SetPanes(catalogSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
