package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var (
	extractURI     string
	extractOut     string
	extractCompact bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [project file]",
	Short: "Extract a project's menu configuration as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := extractConfig(args[0], extractURI)
		if err != nil {
			return err
		}

		indent := 2
		if extractCompact {
			indent = 0
		}
		out := oj.JSON(cfg, indent)

		if extractOut != "" {
			if err := os.WriteFile(extractOut, []byte(out+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", extractOut, err)
			}
			return nil
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractURI, "uri", "", "Locator to record in the config (defaults to the file path)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write JSON to a file instead of stdout")
	extractCmd.Flags().BoolVar(&extractCompact, "compact", false, "Single-line JSON output")
	rootCmd.AddCommand(extractCmd)
}
