package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aalvaropc/datasplit/internal/domain"
)

const doneMessage = "Done! Train/Val/Test split completed."

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printCounts(w io.Writer, c domain.Counts) {
	fmt.Fprintf(w, "Total images: %d\n", c.Total)
	fmt.Fprintf(w, "Train: %d, Val: %d, Test: %d\n", c.Train, c.Val, c.Test)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printFinal prints a finished report, used when counts were not streamed.
func printFinal(w io.Writer, rep domain.SplitReport, format string) error {
	if format == "json" {
		return printJSON(w, rep)
	}
	printCounts(w, rep.Counts)
	if rep.ManifestID != "" {
		fmt.Fprintf(w, "Manifest: %s\n", rep.ManifestID)
	}
	fmt.Fprintln(w, doneMessage)
	return nil
}

func printPlan(w io.Writer, res domain.SplitResult, rep domain.SplitReport, format string) error {
	if format == "json" {
		// Include the assignment as a wrapper to avoid changing the report model.
		return printJSON(w, domain.NewManifest(rep, res))
	}

	printCounts(w, rep.Counts)
	fmt.Fprintln(w)
	for i, g := range res.Groups() {
		labels := 0
		if i < len(rep.Subsets) {
			labels = rep.Subsets[i].Labels
		}
		fmt.Fprintf(w, "%s (%d images, %d labels):\n", g.Subset, len(g.Items), labels)
		for _, it := range g.Items {
			mark := " "
			if it.HasLabel() {
				mark = "+"
			}
			fmt.Fprintf(w, "  %s %s\n", mark, filepath.Base(it.ImagePath))
		}
	}
	fmt.Fprintln(w, "Dry run: nothing was written.")
	return nil
}
