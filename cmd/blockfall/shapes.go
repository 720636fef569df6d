package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the shape catalog",
	Long: `Draws every entry of the shape catalog and reports entries that are
identical, since duplicates skew the piece distribution.

Examples:
  blockfall shapes
  blockfall shapes --shapes standard
  blockfall shapes --list`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

var flagListCatalogs bool

func init() {
	shapesCmd.Flags().StringVar(&flagShapes, "shapes", "", "Shape catalog: reference, standard")
	shapesCmd.Flags().BoolVar(&flagListCatalogs, "list", false, "List the available catalogs instead")
}

func runShapes(cmd *cobra.Command, args []string) error {
	if flagListCatalogs {
		writeCatalogList(os.Stdout, registry.List())
		return nil
	}

	cfg, err := loadConfig(flagConfig, "", flagShapes)
	if err != nil {
		return err
	}
	shapes, err := cfg.Shapes()
	if err != nil {
		return err
	}
	writeCatalog(os.Stdout, shapes)
	return nil
}

// writeCatalog prints each shape as a small block drawing followed by any
// duplicate entries.
func writeCatalog(w io.Writer, shapes []tetris.Shape) {
	fmt.Fprintf(w, "%d shapes:\n\n", len(shapes))
	for i, s := range shapes {
		fmt.Fprintf(w, "  #%d  (%d cells)\n", i, s.Footprint())
		for y := range s.Height() {
			var row strings.Builder
			for x := range s.Width() {
				if s.Filled(x, y) {
					row.WriteString("██")
				} else {
					row.WriteString("  ")
				}
			}
			fmt.Fprintf(w, "      %s\n", strings.TrimRight(row.String(), " "))
		}
		fmt.Fprintln(w)
	}

	dups := tetris.Duplicates(shapes)
	if len(dups) == 0 {
		fmt.Fprintln(w, "No duplicate shapes.")
		return
	}
	fmt.Fprintln(w, "Duplicate shapes (each pair is picked twice as often):")
	for _, d := range dups {
		fmt.Fprintf(w, "  #%d = #%d  %s\n", d[0], d[1], shapes[d[0]])
	}
}

// writeCatalogList prints the registered catalogs as a table.
func writeCatalogList(w io.Writer, catalogs []registry.CatalogInfo) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range catalogs {
		maxNameLen = max(maxNameLen, len(c.Name))
	}

	fmt.Fprintf(w, "  %-*s  %6s  %4s  %s\n", maxNameLen, "Name", "Shapes", "Dups", "Description")
	fmt.Fprintf(w, "  %-*s  %6s  %4s  %s\n", maxNameLen, "----", "------", "----", "-----------")
	for _, c := range catalogs {
		fmt.Fprintf(w, "  %-*s  %6d  %4d  %s\n", maxNameLen, c.Name, c.Shapes, c.Duplicates, c.Description)
	}
}
