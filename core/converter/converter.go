// Package converter drives the pipeline: scan all roots, parse every file
// into the model registry, then resolve and emit. The phases are strictly
// sequential, so forward references always resolve against a complete
// registry and a parse failure guarantees zero output files.
package converter

import (
	"fmt"
	"path/filepath"

	"github.com/jj05y/MTT/core/config"
	"github.com/jj05y/MTT/core/emitter"
	"github.com/jj05y/MTT/core/fsio"
	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/parser"
	"github.com/jj05y/MTT/core/resolver"
	"github.com/jj05y/MTT/core/scanner"
)

type Converter struct {
	cfg *config.Config
	log logger.Sink
}

// NewConverter wires a converter to the host's log sink. A nil sink falls
// back to INFO on the global logger.
func NewConverter(cfg *config.Config, log logger.Sink) *Converter {
	if log == nil {
		log = logger.GetLogFromLevel(logger.INFO)
	}
	return &Converter{cfg: cfg, log: log}
}

// Execute runs the full conversion. It is the single operation the host
// calls; any returned error means no usable output should be assumed.
func (c *Converter) Execute() error {
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	roots, err := c.cfg.WorkingDirectories()
	if err != nil {
		return err
	}
	c.log("Scanning %d working director(ies)", len(roots))

	absOut, err := filepath.Abs(c.cfg.ConvertDirectory)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	scan, err := scanner.NewScanner([]string{absOut}).ScanRoots(roots)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(scan.Models) == 0 {
		c.log("No model files found under %v", roots)
	}

	res := resolver.NewResolver(scan.Models, scan.SharedAncestor, c.cfg.PathStyle)
	if err := parser.NewParser(res).ParseAll(scan.Models); err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	c.log("Parsed %d model(s)", len(scan.Models))

	if err := fsio.RecreateDir(c.cfg.ConvertDirectory); err != nil {
		return err
	}

	if err := emitter.NewEmitter(c.cfg, c.log).EmitAll(scan.Models); err != nil {
		return fmt.Errorf("emit failed: %w", err)
	}
	c.log("Conversion complete: %d file(s) written to %s", len(scan.Models), c.cfg.ConvertDirectory)

	return nil
}
