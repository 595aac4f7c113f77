package cmd

import (
	"fmt"

	"github.com/mapmenu/mapmenu/internal/store"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var showDBPath string

var showCmd = &cobra.Command{
	Use:   "show [uri]",
	Short: "Print a cached menu configuration, or list the cache without an argument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(showDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if len(args) == 0 {
			entries, err := st.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Cache is empty.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s\t%s\tbuilt %s\n", e.URI, e.Filename, e.BuiltAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		}

		cfg, err := st.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(oj.JSON(cfg, 2))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showDBPath, "db", "mapmenu.db", "Path to the menu cache database")
	rootCmd.AddCommand(showCmd)
}
