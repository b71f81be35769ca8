// Command lauegraph indexes a spot file: it loads observed reflections,
// builds the lattice-consistency graph against a reference angle table and
// prints the best grain candidate for each queried spot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lauegraph/adjacency"
	"github.com/katalvlaran/lauegraph/clique"
	"github.com/katalvlaran/lauegraph/grains"
)

var (
	flagFile      string
	flagTable     string
	flagTolerance float64
	flagSpots     int
	flagNodes     []int
	flagBudget    int

	flagTwoThetaCol  int
	flagChiCol       int
	flagIntensityCol int
	flagSkipRows     int
)

var rootCmd = &cobra.Command{
	Use:           "lauegraph",
	Short:         "Grain indexing from polycrystalline diffraction spots",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find the best grain candidate for each queried spot",
	Long: `Reads a whitespace-column spot file (2θ, χ, ..., intensity), selects the
most intense reflections, matches every mutual angular distance against the
reference table and reports, per queried spot, the largest set of spots that
are all pairwise consistent with the lattice geometry.`,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&flagFile, "file", "f", "", "spot file to index (required)")
	findCmd.Flags().StringVar(&flagTable, "table", "", "reference table snapshot (JSON); built-in cubic table when empty")
	findCmd.Flags().Float64Var(&flagTolerance, "tol", 0.05, "angular matching tolerance in degrees (0 = exact)")
	findCmd.Flags().IntVar(&flagSpots, "spots", grains.AllSpots, "number of most intense spots to keep (-1 = all)")
	findCmd.Flags().IntSliceVar(&flagNodes, "nodes", []int{0}, "spot indices (after selection) to query")
	findCmd.Flags().IntVar(&flagBudget, "budget", clique.DefaultMaxExpansions, "clique search expansion budget")
	findCmd.Flags().IntVar(&flagTwoThetaCol, "col-2theta", 0, "column index of the 2θ angle")
	findCmd.Flags().IntVar(&flagChiCol, "col-chi", 1, "column index of the χ angle")
	findCmd.Flags().IntVar(&flagIntensityCol, "col-int", 4, "column index of the intensity")
	findCmd.Flags().IntVar(&flagSkipRows, "skip", 1, "header rows to skip")
	_ = findCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	f, err := os.Open(flagFile)
	if err != nil {
		return fmt.Errorf("open spot file: %w", err)
	}
	defer f.Close()

	layout := grains.FileLayout{
		TwoThetaCol:  flagTwoThetaCol,
		ChiCol:       flagChiCol,
		IntensityCol: flagIntensityCol,
		SkipRows:     flagSkipRows,
	}
	spots, err := grains.ReadSpots(f, layout)
	if err != nil {
		return err
	}

	selected := grains.SelectBrightest(spots, flagSpots)
	cmd.Printf("indexing %d of %d spots, tolerance %g°, table of %d angles\n",
		len(selected), len(spots), flagTolerance, table.Len())

	finder, err := grains.NewFinder(table, flagTolerance, clique.Options{MaxExpansions: flagBudget})
	if err != nil {
		return err
	}

	candidates, err := finder.BestGrains(selected, flagNodes)
	if err != nil {
		return err
	}

	for i, grain := range candidates {
		cmd.Printf("spot %d: grain of %d spots %v\n", flagNodes[i], len(grain), grain)
	}

	return nil
}

// loadTable returns the snapshot named by --table, or the built-in cubic
// table when the flag is empty.
func loadTable() (adjacency.ReferenceTable, error) {
	if flagTable == "" {
		return adjacency.Cubic(), nil
	}

	f, err := os.Open(flagTable)
	if err != nil {
		return adjacency.ReferenceTable{}, fmt.Errorf("open table snapshot: %w", err)
	}
	defer f.Close()

	return adjacency.FromSnapshot(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lauegraph:", err)
		os.Exit(1)
	}
}
