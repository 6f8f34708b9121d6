package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"armature-merge/internal/document"
)

func runCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)
	w := cmd.OutOrStdout()

	path, err := requiredString(cmd, "scene")
	if err != nil {
		return err
	}

	sf, err := document.LoadScene(path)
	if err != nil {
		return err
	}

	// A job cannot be checked against a scene that failed to build.
	sc, diags, buildErr := document.Build(sf)

	if jobPath, _ := cmd.Flags().GetString("job"); jobPath != "" && buildErr == nil {
		job, err := document.LoadJob(jobPath)
		if err != nil {
			return err
		}

		diags.Merge(job.Validate(sc))
	}

	printDiagnostics(w, diags)

	logger.Debug("check finished",
		slog.Int("errors", len(diags.Errors)),
		slog.Int("warnings", len(diags.Warnings)))

	if diags.HasErrors() {
		return fmt.Errorf("check failed with %d error(s)", len(diags.Errors))
	}

	fmt.Fprintf(w, "OK (%d warning(s))\n", len(diags.Warnings))

	return nil
}
