package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	wallplan "github.com/trowelbot/wallplan"
)

var (
	inputPath  string
	outputPath string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a coverage path for a PlanRequest read as JSON",
	Long: `Reads a PlanRequest as JSON from --input (or stdin), runs the
planner, and writes the resulting PlanResult as JSON to --output (or
stdout).`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a PlanRequest JSON file (default: stdin)")
	planCmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the PlanResult JSON (default: stdout)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	req, err := readRequest(inputPath)
	if err != nil {
		return fmt.Errorf("reading plan request: %w", err)
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = " planning coverage path"
	if !verbose {
		spin.Start()
	}

	verboseLog("wall %gx%g, tool %g/%g, %d obstacle(s)",
		req.Wall.Width, req.Wall.Height, req.Tool.Width, req.Tool.OverlapMargin, len(req.Obstacles))

	result, err := wallplan.Plan(req)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	verboseLog("%d cell(s), %d segment(s), total length %.3f",
		result.Metadata.NumCells, len(result.Segments), result.Metadata.TotalLength)

	return writeResult(outputPath, result)
}

func readRequest(path string) (wallplan.PlanRequest, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return wallplan.PlanRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var req wallplan.PlanRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return wallplan.PlanRequest{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return req, nil
}

func writeResult(path string, result wallplan.PlanResult) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}
