// Package models defines the intermediate representation shared by the
// scanner, parser, resolver and emitter. The scanner populates identity and
// location, the parser fills in structure, and the emitter reads the result.
package models

// ModelFile represents one discovered source file: exactly one class or enum,
// named after the file's base name.
type ModelFile struct {
	Name      string   // Capitalized type identifier derived from the file name
	FullPath  string   // Absolute path of the source file
	Root      string   // Absolute path of the discovery root this file came from
	Structure string   // Directory path relative to Root (slash separated, "" for top level)
	Lines     []string // Raw source lines, loaded at scan time

	IsEnum                bool
	Inherits              string // Base type name, empty when none
	InheritanceImportPath string // Resolved import path for Inherits

	Objects     []PropertyEntry // Declaration order; may hold one placeholder entry
	EnumEntries []EnumEntry     // Declaration order
}

// PropertyEntry is a single parsed property of a class model.
type PropertyEntry struct {
	Name          string
	Type          string // Resolved target type name (primitive-mapped or user-defined)
	IsArray       bool
	IsOptional    bool
	IsUserDefined bool
	ImportPath    string // Only set when IsUserDefined
	Container     *ContainerPair
}

// ContainerPair is the two-type-parameter map/dictionary shape. When present
// it takes precedence over Type/IsArray in emission.
type ContainerPair struct {
	KeyType          string
	ValueType        string
	KeyUserDefined   bool
	ValueUserDefined bool
	KeyImportPath    string
	ValueImportPath  string
}

// IsContainer reports whether the property carries a map shape.
func (p PropertyEntry) IsContainer() bool {
	return p.Container != nil
}

// IsPlaceholder reports whether the entry only marks "has inheritance but no
// own properties" and must never be emitted as a field.
func (p PropertyEntry) IsPlaceholder() bool {
	return p.Name == ""
}

// EnumEntry is a single enumerator. NumericValue is only meaningful when
// IsImplicit is false; implicit entries defer to the target format's own
// auto-increment.
type EnumEntry struct {
	Name         string
	NumericValue int64
	IsImplicit   bool
}

// LineKind tags the heuristic classification of a single source line.
type LineKind int

const (
	LineOther LineKind = iota
	LineBlank
	LineCommentOnly
	LineDirective
	LineEnumHeader
	LineClassHeader
	LineProperty
	LineEnumerator
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineCommentOnly:
		return "comment"
	case LineDirective:
		return "directive"
	case LineEnumHeader:
		return "enum-header"
	case LineClassHeader:
		return "class-header"
	case LineProperty:
		return "property"
	case LineEnumerator:
		return "enumerator"
	default:
		return "other"
	}
}
