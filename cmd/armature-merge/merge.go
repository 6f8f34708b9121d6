package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"armature-merge/internal/armature"
	"armature-merge/internal/diagnostic"
	"armature-merge/internal/document"
	"armature-merge/internal/scene"
)

// MergeSummary is the --json output of the merge command.
type MergeSummary struct {
	Remapped       int              `json:"remapped"`
	Unmatched      int              `json:"unmatched"`
	ExtraActions   int              `json:"extra_actions"`
	Removed        int              `json:"removed"`
	ScaleMismatch  bool             `json:"scale_mismatch"`
	UnmatchedBones []string         `json:"unmatched_bones,omitempty"`
	Attachments    []AttachmentJSON `json:"attachments,omitempty"`
	DestroyedBones []string         `json:"destroyed_bones,omitempty"`
	OutputFile     string           `json:"output_file,omitempty"`
	Diagnostics    []DiagnosticJSON `json:"diagnostics,omitempty"`
}

type AttachmentJSON struct {
	Bone   string `json:"bone"`
	Anchor string `json:"anchor"`
	Target string `json:"target"`
}

type DiagnosticJSON struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Mesh        string   `json:"mesh,omitempty"`
	Bone        string   `json:"bone,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func runMerge(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	sc, diags, err := loadScene(cmd, logger)
	if err != nil {
		return err
	}

	job, err := loadJob(cmd)
	if err != nil {
		return err
	}

	plan, err := job.Plan(sc)
	if err != nil {
		return err
	}

	plan.Options.Logger = logger

	report, err := armature.Merge(plan.MainRoot, plan.MergeRoot, plan.Meshes, plan.Options)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	diags.Merge(report.Diagnostics)

	out := document.Export(sc)
	outPath, _ := cmd.Flags().GetString("out")
	asJSON, _ := cmd.Flags().GetBool("json")

	if outPath != "" {
		if err := document.WriteScene(out, outPath); err != nil {
			return err
		}

		logger.Info("scene written", slog.String("path", outPath))
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), summarize(sc, report, diags, outPath))
	}

	reportTo := cmd.OutOrStdout()

	if outPath == "" {
		data, err := document.MarshalScene(out)
		if err != nil {
			return err
		}

		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}

		reportTo = cmd.ErrOrStderr()
	}

	printDiagnostics(reportTo, diags)
	fmt.Fprintln(reportTo, report.String())

	return nil
}

// loadJob reads --job when given and applies every flag the user set on top.
func loadJob(cmd *cobra.Command) (*document.JobFile, error) {
	job := &document.JobFile{Version: document.CurrentVersion}

	if path, _ := cmd.Flags().GetString("job"); path != "" {
		loaded, err := document.LoadJob(path)
		if err != nil {
			return nil, err
		}

		job = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("main") {
		job.Main, _ = flags.GetString("main")
	}

	if flags.Changed("merge") {
		job.Merge, _ = flags.GetString("merge")
	}

	if flags.Changed("mesh") {
		meshes, _ := flags.GetStringSlice("mesh")
		job.Meshes = document.StringOrArray(meshes)
	}

	if flags.Changed("extra-bones") {
		job.ExtraBones, _ = flags.GetString("extra-bones")
	}

	if flags.Changed("remove-unused") {
		job.RemoveUnused, _ = flags.GetBool("remove-unused")
	}

	if flags.Changed("ignore-bone-path") {
		job.IgnoreBonePath, _ = flags.GetBool("ignore-bone-path")
	}

	return job, nil
}

// loadScene reads and builds --scene. Build warnings are logged and returned.
func loadScene(cmd *cobra.Command, logger *slog.Logger) (*scene.Scene, diagnostic.Diagnostics, error) {
	path, err := requiredString(cmd, "scene")
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	sf, err := document.LoadScene(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	sc, diags, err := document.Build(sf)
	if err != nil {
		return nil, diags, fmt.Errorf("invalid scene %s: %w", path, err)
	}

	for _, w := range diags.Warnings {
		logger.Warn(w.Message, slog.String("code", w.Code), slog.String("bone", w.Bone))
	}

	logger.Debug("scene loaded",
		slog.String("path", path),
		slog.Int("roots", len(sc.Roots)),
		slog.Int("meshes", len(sc.Meshes)))

	return sc, diags, nil
}

func summarize(sc *scene.Scene, r *armature.Report, diags diagnostic.Diagnostics, outPath string) MergeSummary {
	s := MergeSummary{
		Remapped:      r.Remapped,
		Unmatched:     r.Unmatched,
		ExtraActions:  r.ExtraActions,
		Removed:       r.Removed,
		ScaleMismatch: r.ScaleMismatch,
		OutputFile:    outPath,
		Diagnostics:   diagnosticsJSON(diags),
	}

	for _, b := range r.UnmatchedBones {
		s.UnmatchedBones = append(s.UnmatchedBones, b.Name)
	}

	for _, a := range r.Attachments {
		s.Attachments = append(s.Attachments, AttachmentJSON{
			Bone:   a.Bone.Name,
			Anchor: a.Anchor.Name,
			Target: document.RefFor(sc, a.Target),
		})
	}

	for _, b := range r.Destroyed {
		s.DestroyedBones = append(s.DestroyedBones, b.Name)
	}

	return s
}

func diagnosticsJSON(diags diagnostic.Diagnostics) []DiagnosticJSON {
	var out []DiagnosticJSON

	for _, d := range diags.All() {
		out = append(out, DiagnosticJSON{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Mesh:        d.Mesh,
			Bone:        d.Bone,
			Suggestions: d.Suggestions,
		})
	}

	return out
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintln(w, d.String())
	}
}
