package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "chatgpt-scheduler",
	Short: "Discrete-time CPU scheduling simulator",
	Long: `chatgpt-scheduler replays a process scenario through a chosen scheduling
algorithm (first-come first-served, preemptive shortest job first, or
round-robin) tick by tick and reports the event trace plus per-process
wait, turnaround, and response times.`,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag. Shared by every subcommand.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// init sets up persistent CLI flags
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
