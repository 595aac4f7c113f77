package cmd

import (
	"fmt"

	"github.com/mapmenu/mapmenu/internal/sources"
	"github.com/mapmenu/mapmenu/internal/store"
	"github.com/spf13/cobra"
)

var (
	syncSourcesPath string
	syncDBPath      string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Extract every configured project into the menu cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := sources.ParseFile(syncSourcesPath)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects configured.")
			return nil
		}

		st, err := store.Open(syncDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		// One failing project must not block the others.
		failed := 0
		for _, src := range projects {
			if src.Type != sources.DefaultType {
				fmt.Printf("skip %s: unsupported source type %q\n", src.Name, src.Type)
				continue
			}
			cfg, mtime, err := extractConfig(src.URI, src.URI)
			if err != nil {
				fmt.Printf("failed %s: %v\n", src.Name, err)
				failed++
				continue
			}
			if err := st.Put(cfg, mtime); err != nil {
				fmt.Printf("failed %s: %v\n", src.Name, err)
				failed++
				continue
			}
			fmt.Printf("synced %s (%s)\n", src.Name, src.URI)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d projects failed", failed, len(projects))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVarP(&syncSourcesPath, "sources", "s", "mapmenu.hcl", "Path to the HCL sources file")
	syncCmd.Flags().StringVar(&syncDBPath, "db", "mapmenu.db", "Path to the menu cache database")
	rootCmd.AddCommand(syncCmd)
}
