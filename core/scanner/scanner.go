// Package scanner discovers model source files under one or more roots and
// builds the registry the later phases run against. Identity (each model's
// Name) is fixed here, before any parsing, so cross-references always resolve
// against a complete registry.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/models"
	"github.com/jj05y/MTT/core/shared"
)

// SourceExtension is the only file type picked up by the scan.
const SourceExtension = ".cs"

type Scanner struct {
	Exclude []string
}

// Scan is the discovery result: every model with its raw lines loaded, plus
// the shared ancestor all import paths are anchored at.
type Scan struct {
	Models         []*models.ModelFile
	SharedAncestor string
}

func NewScanner(exclude []string) *Scanner {
	base := []string{".git", "node_modules", "bin", "obj", "vendor"}
	return &Scanner{Exclude: append(base, exclude...)}
}

// ScanRoots enumerates every root and loads all source files it finds. Roots
// are resolved to absolute paths first; the shared ancestor is computed from
// those.
func (s *Scanner) ScanRoots(roots []string) (*Scan, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("no working directories given")
	}

	absRoots := make([]string, len(roots))
	for i, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
		}
		absRoots[i] = abs
	}

	ancestor, err := SharedAncestor(absRoots)
	if err != nil {
		return nil, err
	}
	logger.Debug("Shared ancestor of %d root(s): %s", len(absRoots), ancestor)

	scan := &Scan{SharedAncestor: ancestor}
	for _, root := range absRoots {
		if err := s.scanRoot(root, scan); err != nil {
			return nil, err
		}
	}

	logger.Debug("Discovered %d model file(s)", len(scan.Models))
	return scan, nil
}

func (s *Scanner) scanRoot(root string, scan *Scan) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot read working directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("working directory %s is not a directory", root)
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			for _, ex := range s.Exclude {
				// Matches either a directory name anywhere under the
				// root or an absolute path, e.g. the output root.
				if info.Name() == ex || path == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), SourceExtension) {
			return nil
		}

		model, err := loadModel(root, path, relPath)
		if err != nil {
			return err
		}

		scan.Models = append(scan.Models, model)
		logger.Debug("Registered model: %s (%s)", model.Name, relPath)
		return nil
	})
}

func loadModel(root, path, relPath string) (*models.ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	structure := filepath.ToSlash(filepath.Dir(relPath))
	if structure == "." {
		structure = ""
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &models.ModelFile{
		Name:      shared.ToTitle(base),
		FullPath:  path,
		Root:      root,
		Structure: structure,
		Lines:     lines,
	}, nil
}

// SharedAncestor computes the longest common character prefix of the given
// absolute paths, trimmed back to a path-separator boundary so it never splits
// a folder name. Roots with nothing in common are a configuration error.
func SharedAncestor(absRoots []string) (string, error) {
	if len(absRoots) == 1 {
		return absRoots[0], nil
	}

	prefix := absRoots[0]
	for _, root := range absRoots[1:] {
		prefix = commonPrefix(prefix, root)
	}

	// Trim back to the nearest separator unless the prefix is already an
	// exact root.
	trimmed := prefix
	if !isSeparatorBounded(prefix, absRoots) {
		idx := strings.LastIndexAny(prefix, "/\\")
		if idx < 0 {
			trimmed = ""
		} else {
			trimmed = prefix[:idx]
		}
	}
	trimmed = strings.TrimRight(trimmed, "/\\")
	if trimmed == "" && !strings.HasPrefix(prefix, string(filepath.Separator)) {
		return "", fmt.Errorf("working directories %v share no common ancestor", absRoots)
	}
	if trimmed == "" {
		trimmed = string(filepath.Separator)
	}
	return trimmed, nil
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// isSeparatorBounded reports whether prefix ends exactly at a path boundary
// for every root: either the root itself, or followed by a separator.
func isSeparatorBounded(prefix string, absRoots []string) bool {
	if prefix == "" {
		return false
	}
	for _, root := range absRoots {
		if root == prefix {
			continue
		}
		rest := root[len(prefix):]
		if !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "\\") {
			return false
		}
	}
	return true
}
