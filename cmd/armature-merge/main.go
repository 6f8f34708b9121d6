// Package main provides the CLI entrypoint for armature-merge.
//
// armature-merge binds clothing and accessory meshes rigged to their own
// armature onto a character's armature:
//   - Loads a YAML scene document (node hierarchy + skinned meshes)
//   - Remaps mesh bone references by relative path or by name
//   - Reparents or constrains bones the character lacks
//   - Writes the merged scene back as YAML
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "armature-merge",
		Short: "Merge skinned meshes onto another armature",
		Long: `armature-merge rebinds skinned meshes from a merge armature onto a main
armature. Bones are matched by path relative to the armature root, or by
name anywhere below it. Bones without a counterpart can be left in place,
moved under the main armature, or bound with a follow constraint.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("scene", "", "Scene document (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug records to stderr")

	// Merge command - remap meshes and write the result
	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge meshes onto the main armature",
		Args:  cobra.NoArgs,
		RunE:  runMerge,
	}
	mergeCmd.Flags().String("job", "", "Job file (YAML); flags override its values")
	mergeCmd.Flags().String("main", "", "Main armature root (path or id)")
	mergeCmd.Flags().String("merge", "", "Merge armature root (path or id)")
	mergeCmd.Flags().StringSlice("mesh", nil, "Meshes to merge (default: every mesh bound to the merge armature)")
	mergeCmd.Flags().String("extra-bones", "", "What to do with unmatched bones: none|reparent|follow")
	mergeCmd.Flags().Bool("remove-unused", false, "Destroy merge bones replaced by a counterpart")
	mergeCmd.Flags().Bool("ignore-bone-path", false, "Match bones by name anywhere under the main armature")
	mergeCmd.Flags().StringP("out", "o", "", "Write the merged scene to this file")
	mergeCmd.Flags().Bool("json", false, "Print a machine-readable report")

	// Tree command - print the hierarchy
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the node hierarchy with ids",
		Args:  cobra.NoArgs,
		RunE:  runTree,
	}
	treeCmd.Flags().String("root", "", "Only print the subtree at this path or id")

	// Check command - validate without merging
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a scene document and job without merging",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	checkCmd.Flags().String("job", "", "Job file (YAML)")

	rootCmd.AddCommand(mergeCmd, treeCmd, checkCmd)

	return rootCmd
}

// newLogger returns a text logger on the command's error stream.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return "", fmt.Errorf("--%s is required", name)
	}

	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
