package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obseryx/ChatGPT-Scheduler/sim/scenario"
)

// validateCmd checks a scenario file without running it
var validateCmd = &cobra.Command{
	Use:   "validate <input-file>",
	Short: "Check a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := scenario.Load(args[0])
		if err == nil {
			err = sc.Validate()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok (%d processes, %s, horizon %d)\n",
			args[0], len(sc.Processes), sc.Use, sc.RunFor)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
