package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/alt"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [project file] [jsonpath]",
	Short: "Evaluate a JSONPath expression against a project's menu configuration",
	Long: `Evaluate a JSONPath expression against a project's menu configuration.

Examples:
  mapmenu query demo.qgs '$..name'
  mapmenu query demo.qgs '$.root_group.childs[?(@.kind == "layer")].layer_id'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := extractConfig(args[0], "")
		if err != nil {
			return err
		}

		expr, err := jp.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("invalid jsonpath '%s': %w", args[1], err)
		}

		// Decompose to generic data so the path evaluates over the same
		// shape the JSON output has.
		results := expr.Get(alt.Decompose(cfg))
		for _, r := range results {
			fmt.Println(oj.JSON(r))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
