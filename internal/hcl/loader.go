package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/graphwatch/internal/config"
	"github.com/vk/graphwatch/internal/ctxlog"
	"github.com/vk/graphwatch/internal/fsutil"
	"github.com/vk/graphwatch/internal/schema"
)

// Loader implements config.Loader for .hcl scenario files.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under the given paths (files or
// directories), parses them, and merges their contents into a single
// scenario model. Files are loaded in sorted path order, so declarations and
// steps keep a deterministic overall order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scenario, config.Decoder, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to find scenario files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl scenario files found.", "paths", paths)
	}

	model := &config.Scenario{}
	parser := hclparse.NewParser()
	for _, file := range files {
		logger.Debug("Parsing scenario file.", "file", file)
		if err := l.loadFile(file, parser, model); err != nil {
			return nil, nil, err
		}
	}
	return model, &Decoder{}, nil
}

// loadFile parses a single scenario file and merges it into the model.
func (l *Loader) loadFile(filePath string, parser *hclparse.Parser, model *config.Scenario) error {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %w", filePath, diags)
	}

	var parsed schema.Scenario
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", filePath, diags)
	}

	return translate(&parsed, filePath, model)
}
