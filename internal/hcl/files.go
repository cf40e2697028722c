package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"github.com/specialistvlad/graphflow/internal/fsutil"
)

// Extension is the suffix of files picked up from directories.
const Extension = ".hcl"

// decodeFiles parses every HCL file found under paths and decodes each body
// into a new T.
func decodeFiles[T any](ctx context.Context, paths []string) ([]*T, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	roots := make([]*T, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		root := new(T)
		if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// diagError builds a single error diagnostic anchored at subject.
func diagError(subject hcl.Range, summary, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject.Ptr(),
	}
}
