package main

import (
	"fmt"
	"io"

	"solar-system-server/internal/seed"
)

func printReport(w io.Writer, report *seed.Report, verbose bool) {
	if report.BackupPath != "" {
		fmt.Fprintf(w, "Backup created: %s\n", report.BackupPath)
	}
	if report.BackupErr != nil {
		fmt.Fprintf(w, "Could not create backup: %v\n", report.BackupErr)
	}
	if report.Deleted > 0 {
		fmt.Fprintf(w, "Deleted %d existing records\n", report.Deleted)
	}

	if verbose {
		for _, outcome := range report.Outcomes {
			fmt.Fprintf(w, "   %s\n", outcome)
		}
	}

	fmt.Fprintln(w, "\nSolar System Data Population Complete!")
	fmt.Fprintln(w, "   Statistics:")
	fmt.Fprintf(w, "      - Total celestial bodies: %d\n", report.Total)
	fmt.Fprintf(w, "      - Bodies created: %d\n", report.Created)
	fmt.Fprintf(w, "      - Bodies updated: %d\n", report.Updated)
	fmt.Fprintf(w, "      - Bodies skipped: %d\n", report.Skipped)
	fmt.Fprintf(w, "      - Bodies with moons: %d\n", report.BodiesWithMoons)
	fmt.Fprintf(w, "      - Bodies with rings: %d\n", report.BodiesWithRings)
	fmt.Fprintf(w, "      - Total known moons: %d\n", report.TotalMoons)
}

func printValidation(w io.Writer, report *seed.ValidationReport) {
	if report.Valid {
		fmt.Fprintln(w, "All planetary data validated successfully")
		return
	}

	fmt.Fprintln(w, "Validation errors found:")
	for _, violation := range report.Violations {
		fmt.Fprintf(w, "   - %s\n", violation)
	}
}
