package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"armature-merge/internal/document"
	"armature-merge/internal/scene"
)

func runTree(cmd *cobra.Command, _ []string) error {
	sc, _, err := loadScene(cmd, newLogger(cmd))
	if err != nil {
		return err
	}

	roots := sc.TopLevel()

	if ref, _ := cmd.Flags().GetString("root"); ref != "" {
		n := document.ResolveRef(sc, ref)
		if n == nil {
			return fmt.Errorf("node not found: %s", ref)
		}

		roots = []*scene.Node{n}
	}

	w := cmd.OutOrStdout()
	for _, r := range roots {
		printTree(w, r, 0)
	}

	for _, m := range sc.Meshes {
		if len(roots) == len(sc.TopLevel()) || boundToAny(m, roots) {
			fmt.Fprintf(w, "mesh %s -> %s (%d bones)\n", m.Name, document.RefFor(sc, m.RootBone), len(m.Bones))
		}
	}

	return nil
}

func printTree(w io.Writer, n *scene.Node, depth int) {
	line := strings.Repeat("  ", depth) + n.Name
	if n.Follow != nil && n.Follow.Source != nil {
		line += " (follows " + n.Follow.Source.Name + ")"
	}

	fmt.Fprintf(w, "%s  %s\n", line, n.ID)

	for _, c := range n.Children() {
		printTree(w, c, depth+1)
	}
}

func boundToAny(m *scene.SkinnedMesh, roots []*scene.Node) bool {
	for _, r := range roots {
		if m.BoundTo(r) {
			return true
		}
	}

	return false
}
