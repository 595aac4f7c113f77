// Package sources loads the user's configured list of projects to build
// menus from. The list lives in an HCL file of project blocks:
//
//	project "Environment" {
//	  uri  = "/data/env.qgs"
//	  type = "file"
//	}
package sources

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultType is assumed when a project block omits its type.
const DefaultType = "file"

// Source is one configured project.
type Source struct {
	Name string `hcl:"name,label"`
	// URI is the locator the project is opened from: a local path, or a
	// remote locator stored verbatim for hosts that resolve it.
	URI  string `hcl:"uri"`
	Type string `hcl:"type,optional"`
}

// sourcesFile is the top-level HCL structure for decoding.
type sourcesFile struct {
	Projects []*Source `hcl:"project,block"`
}

// ParseFile reads and validates a sources file from disk.
func ParseFile(path string) ([]*Source, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse sources file %s: %w", path, diags)
	}

	var parsed sourcesFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode sources file %s: %w", path, diags)
	}
	return normalize(parsed.Projects, path)
}

// Parse decodes a sources file from memory. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) ([]*Source, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse sources %s: %w", filename, diags)
	}

	var parsed sourcesFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode sources %s: %w", filename, diags)
	}
	return normalize(parsed.Projects, filename)
}

func normalize(projects []*Source, filename string) ([]*Source, error) {
	for i, p := range projects {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: project block %d has an empty name", filename, i)
		}
		if p.URI == "" {
			return nil, fmt.Errorf("%s: project %q has an empty uri", filename, p.Name)
		}
		if p.Type == "" {
			p.Type = DefaultType
		}
	}
	return projects, nil
}
