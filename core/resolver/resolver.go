// Package resolver answers two questions against a frozen registry: is a
// type name one of the discovered models, and if so, what relative import
// path reaches it. Paths are anchored at the shared ancestor of all roots so
// files from disjoint trees still resolve against each other.
package resolver

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/models"
	"github.com/jj05y/MTT/core/shared"
)

// Resolver is a read-only view over the fully populated registry. It must not
// be constructed before discovery has finished.
type Resolver struct {
	registry       []*models.ModelFile
	sharedAncestor string
	pathStyle      string
}

func NewResolver(registry []*models.ModelFile, sharedAncestor, pathStyle string) *Resolver {
	return &Resolver{
		registry:       registry,
		sharedAncestor: sharedAncestor,
		pathStyle:      pathStyle,
	}
}

// Lookup reports whether name is user-defined, i.e. exactly equals a model
// name in the registry. Linear scan, last match wins; duplicate names are not
// validated against.
func (r *Resolver) Lookup(name string) (*models.ModelFile, bool) {
	var found *models.ModelFile
	for _, m := range r.registry {
		if m.Name == name {
			found = m
		}
	}
	return found, found != nil
}

// Resolve computes the normalized relative import path from the referencing
// model to the named type. The second return is false when the name is not
// user-defined. A model referencing itself is user-defined but needs no
// import, yielding an empty path.
func (r *Resolver) Resolve(from *models.ModelFile, name string) (string, bool, error) {
	target, ok := r.Lookup(name)
	if !ok {
		return "", false, nil
	}
	if target == from {
		return "", true, nil
	}

	importPath, err := r.importPath(from, target)
	if err != nil {
		return "", true, err
	}
	logger.Debug("Resolved %s -> %s as %s", from.Name, target.Name, importPath)
	return importPath, true, nil
}

func (r *Resolver) importPath(from, target *models.ModelFile) (string, error) {
	fromDir, err := r.anchoredDir(from)
	if err != nil {
		return "", err
	}
	targetDir, err := r.anchoredDir(target)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(fromDir, targetDir)
	if err != nil {
		return "", fmt.Errorf("no relative path from %s to %s: %w", from.Name, target.Name, err)
	}

	fileName := shared.CaseFileName(r.pathStyle, target.Name)
	imported := path.Join(r.caseSegments(filepath.ToSlash(rel)), fileName)

	// A plain sibling path needs the explicit same-directory marker.
	if !strings.HasPrefix(imported, "../") && !strings.HasPrefix(imported, "./") {
		imported = "./" + imported
	}
	return imported, nil
}

// anchoredDir places the model's structural path under the shared ancestor.
// The structural path is relative to the model's own root, so anchoring both
// ends of a reference at the same base keeps relative paths well-defined even
// across disjoint roots, and mirrors where the emitter will actually place
// the output file.
func (r *Resolver) anchoredDir(m *models.ModelFile) (string, error) {
	full := filepath.Join(r.sharedAncestor, filepath.FromSlash(m.Structure))
	rel, err := filepath.Rel(r.sharedAncestor, full)
	if err != nil {
		return "", fmt.Errorf("model %s is not under the shared ancestor %s: %w", m.Name, r.sharedAncestor, err)
	}
	return filepath.ToSlash(rel), nil
}

// caseSegments applies the directory style to every real segment of a
// relative path, leaving traversal markers alone.
func (r *Resolver) caseSegments(rel string) string {
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		if part == ".." || part == "." || part == "" {
			continue
		}
		parts[i] = shared.CaseDirSegment(r.pathStyle, part)
	}
	return strings.Join(parts, "/")
}
