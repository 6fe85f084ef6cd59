package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/obseryx/ChatGPT-Scheduler/sim"
	"github.com/obseryx/ChatGPT-Scheduler/sim/scenario"
)

var (
	outputPath string // report destination, "-" writes to stdout only
	quiet      bool   // suppress the stdout echo of the report
)

// runScenario loads, validates, and runs the scenario at path, returning the
// report lines. Split from the cobra handler so tests can call it directly.
func runScenario(path string) ([]string, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	lines, metrics, err := sim.RunReport(sc)
	if err != nil {
		return nil, err
	}
	metrics.LogSummary()
	return lines, nil
}

// defaultOutputPath maps an input path to its report path by swapping the
// extension for .out: scenarios/fcfs.in becomes scenarios/fcfs.out.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".out"
}

// runCmd executes a scenario and writes its report
var runCmd = &cobra.Command{
	Use:   "run <input-file>",
	Short: "Run a scheduling scenario and write its report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		inputPath := args[0]
		lines, err := runScenario(inputPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		dest := outputPath
		if dest == "" {
			dest = defaultOutputPath(inputPath)
		}
		if dest != "-" {
			if err := writeReportFile(dest, lines); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		if dest == "-" || !quiet {
			if err := sim.WriteLines(os.Stdout, lines); err != nil {
				logrus.Fatalf("writing report to stdout: %v", err)
			}
		}
	},
}

func writeReportFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	if err := sim.WriteLines(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}

// init sets up CLI flags and attaches `run` to `root`
func init() {
	runCmd.Flags().StringVar(&outputPath, "output", "", "Report destination (default: input path with .out extension, \"-\" for stdout only)")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip echoing the report to stdout")
	rootCmd.AddCommand(runCmd)
}
