// Package parser turns raw source lines into filled models: a single pass per
// file, heuristic line classification, no grammar and no backtracking except
// the dedicated enumerator rescan once an enum declaration is found.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/models"
	"github.com/jj05y/MTT/core/resolver"
	"github.com/jj05y/MTT/core/typemap"
)

// modifiers stripped from the front of a property declaration before the
// type and name tokens are read.
var modifiers = []string{"public", "static", "const", "readonly", "virtual"}

// collectionHints mark a type as array-shaped when they occur in its name.
var collectionHints = []string{"list", "collection", "enumerable", "array"}

type Parser struct {
	resolver *resolver.Resolver
}

func NewParser(r *resolver.Resolver) *Parser {
	return &Parser{resolver: r}
}

// ParseAll fills every model in the registry. Any error is fatal for the
// whole run; no partially parsed registry ever reaches emission.
func (p *Parser) ParseAll(registry []*models.ModelFile) error {
	for _, m := range registry {
		if err := p.Parse(m); err != nil {
			return err
		}
	}
	return nil
}

// Parse classifies the model's lines and fills in kind, inheritance and the
// ordered property or enumerator list.
func (p *Parser) Parse(m *models.ModelFile) error {
	for _, raw := range m.Lines {
		line := strings.TrimSpace(StripComment(raw))

		switch Classify(raw) {
		case models.LineBlank, models.LineCommentOnly, models.LineDirective:
			continue

		case models.LineEnumHeader:
			if err := rejectInlineBrace(m, line); err != nil {
				return err
			}
			m.IsEnum = true
			// The body scan covers the whole file, not just the
			// remainder, and ends parsing for this model.
			return p.parseEnumEntries(m)

		case models.LineClassHeader:
			if err := rejectInlineBrace(m, line); err != nil {
				return err
			}
			if strings.Contains(line, ":") {
				if err := p.parseInheritance(m, line); err != nil {
					return err
				}
			}

		case models.LineProperty:
			if err := p.parseProperty(m, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// rejectInlineBrace enforces the structural rule that a declaration's opening
// brace sits on its own following line.
func rejectInlineBrace(m *models.ModelFile, line string) error {
	if strings.Contains(line, "{") {
		return fmt.Errorf("%s: declaration and opening brace must not share a line: %q", m.Name, line)
	}
	return nil
}

func (p *Parser) parseEnumEntries(m *models.ModelFile) error {
	// Informational only: emission decisions depend solely on each entry's
	// own implicit flag, never on this accumulator.
	var lastExplicit *int64

	for _, raw := range m.Lines {
		line := StripComment(raw)
		if !IsEnumeratorShaped(line) {
			continue
		}

		tokens := strings.Fields(line)
		name := strings.TrimSuffix(tokens[0], ",")
		if name == "" {
			continue
		}

		entry := models.EnumEntry{Name: name, IsImplicit: true}
		if len(tokens) >= 3 && tokens[1] == "=" {
			value, err := parseEnumValue(tokens[2])
			if err != nil {
				return fmt.Errorf("%s: cannot parse enum value for %s: %w", m.Name, name, err)
			}
			entry.NumericValue = value
			entry.IsImplicit = false
			lastExplicit = &value
		}

		if entry.IsImplicit && lastExplicit != nil {
			logger.Debug("%s.%s continues implicitly after %d", m.Name, name, *lastExplicit)
		}
		m.EnumEntries = append(m.EnumEntries, entry)
	}
	return nil
}

// parseEnumValue accepts decimal and 0x-prefixed hexadecimal literals.
func parseEnumValue(token string) (int64, error) {
	cleaned := strings.TrimRight(token, ",;")
	value, err := strconv.ParseInt(cleaned, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid literal %q: %w", token, err)
	}
	return value, nil
}

// parseInheritance reads the base-type clause of a class header. Interface
// conventions (I followed by another capital) are non-structural and skipped;
// a comma list is truncated at the first comma.
func (p *Parser) parseInheritance(m *models.ModelFile, line string) error {
	after := line[strings.Index(line, ":")+1:]
	after, _, _ = strings.Cut(after, ",")

	fields := strings.Fields(after)
	if len(fields) == 0 {
		return nil
	}
	base := fields[len(fields)-1]
	if isInterfaceName(base) {
		logger.Debug("%s: ignoring interface base %s", m.Name, base)
		return nil
	}

	importPath, _, err := p.resolver.Resolve(m, base)
	if err != nil {
		return err
	}

	m.Inherits = base
	m.InheritanceImportPath = importPath
	// Guarantees a non-empty object list for inheritance-only classes; the
	// emitter never renders this entry as a field.
	m.Objects = append(m.Objects, models.PropertyEntry{})
	return nil
}

func isInterfaceName(name string) bool {
	return len(name) >= 2 && name[0] == 'I' &&
		name[1] >= 'A' && name[1] <= 'Z'
}

func (p *Parser) parseProperty(m *models.ModelFile, line string) error {
	typeStr, varName, ok := splitDeclaration(line)
	if !ok {
		return nil
	}

	entry := models.PropertyEntry{Name: varName}

	switch {
	case isDictionaryShaped(typeStr):
		container, err := p.parseContainer(m, typeStr)
		if err != nil {
			return err
		}
		entry.Container = container

	default:
		if strings.Contains(typeStr, "?") {
			entry.IsOptional = true
		}
		entry.IsArray = isArrayShaped(typeStr)

		resolvedType, userDefined, importPath, err := p.resolveType(m, cleanType(typeStr))
		if err != nil {
			return err
		}
		entry.Type = resolvedType
		entry.IsUserDefined = userDefined
		entry.ImportPath = importPath
	}

	m.Objects = append(m.Objects, entry)
	return nil
}

// splitDeclaration strips access and storage modifiers, then reads the type
// (re-joining generic arguments split by whitespace) and the variable name.
func splitDeclaration(line string) (typeStr, varName string, ok bool) {
	tokens := strings.Fields(line)

	i := 0
	for i < len(tokens) && isModifier(tokens[i]) {
		i++
	}
	if i >= len(tokens) {
		return "", "", false
	}

	// Accumulate tokens until angle brackets balance out, so
	// "Dictionary<string, int>" survives tokenization.
	typeStr = tokens[i]
	i++
	for strings.Count(typeStr, "<") != strings.Count(typeStr, ">") && i < len(tokens) {
		typeStr += tokens[i]
		i++
	}
	if i >= len(tokens) {
		return "", "", false
	}

	varName = tokens[i]
	if idx := strings.Index(varName, "{"); idx >= 0 {
		varName = varName[:idx]
	}
	varName = strings.TrimRight(varName, ";")
	if varName == "" {
		return "", "", false
	}
	return typeStr, varName, true
}

func isModifier(token string) bool {
	for _, mod := range modifiers {
		if token == mod {
			return true
		}
	}
	return false
}

func isDictionaryShaped(typeStr string) bool {
	if !strings.Contains(typeStr, "Dictionary") || !strings.Contains(typeStr, "<") {
		return false
	}
	inner := innerGeneric(typeStr)
	return strings.Contains(inner, ",")
}

func isArrayShaped(typeStr string) bool {
	if strings.HasSuffix(strings.TrimRight(typeStr, "?"), "[]") {
		return true
	}
	lower := strings.ToLower(typeStr)
	for _, hint := range collectionHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// cleanType removes the nullable marker, array suffix and any collection
// wrapper, leaving the bare element type name.
func cleanType(typeStr string) string {
	cleaned := strings.ReplaceAll(typeStr, "?", "")
	cleaned = strings.TrimSuffix(cleaned, "[]")
	if strings.Contains(cleaned, "<") {
		cleaned = innerGeneric(cleaned)
	}
	return strings.TrimSpace(cleaned)
}

func innerGeneric(typeStr string) string {
	open := strings.Index(typeStr, "<")
	end := strings.LastIndex(typeStr, ">")
	if open < 0 || end < open {
		return typeStr
	}
	return typeStr[open+1 : end]
}

func (p *Parser) parseContainer(m *models.ModelFile, typeStr string) (*models.ContainerPair, error) {
	inner := innerGeneric(typeStr)
	keyRaw, valueRaw, _ := strings.Cut(inner, ",")

	keyType, keyUser, keyImport, err := p.resolveType(m, strings.TrimSpace(keyRaw))
	if err != nil {
		return nil, err
	}
	valueType, valueUser, valueImport, err := p.resolveType(m, strings.TrimSpace(valueRaw))
	if err != nil {
		return nil, err
	}

	return &models.ContainerPair{
		KeyType:          keyType,
		ValueType:        valueType,
		KeyUserDefined:   keyUser,
		ValueUserDefined: valueUser,
		KeyImportPath:    keyImport,
		ValueImportPath:  valueImport,
	}, nil
}

// resolveType checks the registry first; names that are not user-defined go
// through the fixed primitive table.
func (p *Parser) resolveType(m *models.ModelFile, name string) (resolved string, userDefined bool, importPath string, err error) {
	importPath, userDefined, err = p.resolver.Resolve(m, name)
	if err != nil {
		return "", false, "", err
	}
	if userDefined {
		return name, true, importPath, nil
	}
	return typemap.Map(name), false, "", nil
}
