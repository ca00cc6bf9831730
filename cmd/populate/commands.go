package main

import (
	"fmt"

	"solar-system-server/internal/seed"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every stored body against the catalog rules",
	Long:  `Scan the stored catalog and list every rule violation. Exits non-zero when any are found.`,
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the stored catalog to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Load a JSON snapshot, overwriting bodies with the same name",
	Long: `Read a snapshot written by "export" or a pre-clear backup and upsert its
records in one transaction. The snapshot is validated first and nothing is
written when it contains violations.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var activateCmd = &cobra.Command{
	Use:   "activate [name...]",
	Short: "Show the named bodies in the API",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setActive(true),
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [name...]",
	Short: "Hide the named bodies from the API",
	Args:  cobra.MinimumNArgs(1),
	RunE:  setActive(false),
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Validating planetary data...")
	report, err := a.seed.Validate(ctx)
	if err != nil {
		return err
	}

	printValidation(cmd.OutOrStdout(), report)
	if !report.Valid {
		return fmt.Errorf("%d validation errors found", len(report.Violations))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	snapshot, err := a.seed.ExportSnapshot(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bodies to: %s\n", snapshot.Metadata.TotalObjects, args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	snapshot, err := seed.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	if violations := seed.ValidateRecords(snapshot.SolarSystem); len(violations) > 0 {
		printValidation(out, &seed.ValidationReport{Violations: violations})
		return fmt.Errorf("snapshot %s has %d validation errors", args[0], len(violations))
	}

	a, err := openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	tally, err := a.seed.Restore(ctx, snapshot)
	if err != nil {
		return err
	}

	if verbose {
		for _, outcome := range tally.Outcomes {
			fmt.Fprintf(out, "   %s\n", outcome)
		}
	}
	fmt.Fprintf(out, "Imported %s: %d created, %d updated\n", args[0], tally.Created, tally.Updated)

	a.purgeCache(ctx)
	return nil
}

func setActive(active bool) func(*cobra.Command, []string) error {
	verb := "Deactivated"
	if active {
		verb = "Activated"
	}

	return func(cmd *cobra.Command, names []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		a, err := openApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		updated, missing, err := a.seed.SetActive(ctx, names, active)
		if err != nil {
			return err
		}

		for _, name := range missing {
			fmt.Fprintf(out, "No body named %q\n", name)
		}
		fmt.Fprintf(out, "%s %d bodies\n", verb, updated)

		if updated > 0 {
			a.purgeCache(ctx)
		}
		return nil
	}
}
