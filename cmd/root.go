package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mapmenu/mapmenu/api"
	"github.com/mapmenu/mapmenu/internal/menu"
	"github.com/mapmenu/mapmenu/internal/project"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mapmenu",
	Short:         "Extract navigable menu trees from geospatial project files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// extractConfig loads a project file from the OS filesystem and builds
// its menu configuration. uri overrides the recorded locator; empty uri
// records the file's absolute path. Also returns the file's modification
// time for cache freshness tracking.
func extractConfig(path, uri string) (*api.ProjectConfig, time.Time, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, time.Time{}, err
	}
	if uri == "" {
		uri = abs
	}

	proj, doc, err := project.Load(osfs.New("/"), abs)
	if err != nil {
		return nil, time.Time{}, err
	}

	cfg, err := menu.BuildProjectConfig(proj, uri, doc)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("build menu config for %s: %w", abs, err)
	}
	return cfg, info.ModTime(), nil
}
