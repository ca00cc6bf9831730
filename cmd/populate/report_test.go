package main

import (
	"bytes"
	stderrors "errors"
	"testing"

	"solar-system-server/internal/seed"

	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	report := &seed.Report{
		Tally: seed.Tally{
			Created: 1,
			Updated: 1,
			Outcomes: []seed.Outcome{
				{Name: "Jupiter", Action: seed.ActionCreated, MoonCount: 95, HasMoons: true, HasRings: true},
				{Name: "Mercury", Action: seed.ActionUpdated},
			},
		},
		Deleted:         10,
		BackupPath:      "backups/planet_backup_20240314_150926.json",
		Total:           10,
		TotalMoons:      293,
		BodiesWithMoons: 7,
		BodiesWithRings: 4,
	}

	var quiet bytes.Buffer
	printReport(&quiet, report, false)
	assert.Contains(t, quiet.String(), "Backup created: backups/planet_backup_20240314_150926.json")
	assert.Contains(t, quiet.String(), "Deleted 10 existing records")
	assert.Contains(t, quiet.String(), "Total known moons: 293")
	assert.NotContains(t, quiet.String(), "created: Jupiter")

	var loud bytes.Buffer
	printReport(&loud, report, true)
	assert.Contains(t, loud.String(), "created: Jupiter (95 moons) (rings)")
	assert.Contains(t, loud.String(), "updated: Mercury\n")
}

func TestPrintReportBackupFailure(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &seed.Report{BackupErr: stderrors.New("read-only file system")}, false)

	assert.Contains(t, buf.String(), "Could not create backup: read-only file system")
	assert.NotContains(t, buf.String(), "Backup created")
}

func TestPrintValidation(t *testing.T) {
	var ok bytes.Buffer
	printValidation(&ok, &seed.ValidationReport{Valid: true})
	assert.Equal(t, "All planetary data validated successfully\n", ok.String())

	var bad bytes.Buffer
	printValidation(&bad, &seed.ValidationReport{Violations: []string{"Mercury: Invalid color_hex format"}})
	assert.Equal(t, "Validation errors found:\n   - Mercury: Invalid color_hex format\n", bad.String())
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"validate", "export", "import", "activate", "deactivate"} {
		assert.True(t, names[want], want)
	}

	for _, flag := range []string{"clear", "include-moons", "include-rings", "update-existing", "export-json", "export-xlsx", "dry-run", "verbose"} {
		assert.NotNil(t, rootCmd.Flag(flag), flag)
	}
}
