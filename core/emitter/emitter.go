// Package emitter serializes parsed models into TypeScript declaration files
// under the output root, mirroring each model's structural path. Output is
// deterministic: declaration order in, declaration order out.
package emitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jj05y/MTT/core/config"
	"github.com/jj05y/MTT/core/fsio"
	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/models"
	"github.com/jj05y/MTT/core/shared"
)

// OutputExtension is appended to every generated file name.
const OutputExtension = ".ts"

// autoGeneratedTag is the optional first line of every output file.
const autoGeneratedTag = "/* Auto Generated */"

const indent = "    "

type Emitter struct {
	cfg *config.Config
	log logger.Sink
}

func NewEmitter(cfg *config.Config, log logger.Sink) *Emitter {
	if log == nil {
		log = logger.GetLogFromLevel(logger.INFO)
	}
	return &Emitter{cfg: cfg, log: log}
}

// EmitAll writes one output file per model, one at a time.
func (e *Emitter) EmitAll(registry []*models.ModelFile) error {
	for _, m := range registry {
		if err := e.Emit(m); err != nil {
			return err
		}
	}
	return nil
}

// Emit renders a single model and writes it to its mirrored location.
func (e *Emitter) Emit(m *models.ModelFile) error {
	outPath := e.OutputPath(m)

	var content string
	if m.IsEnum {
		content = e.renderEnum(m)
	} else {
		content = e.renderInterface(m)
	}

	if err := fsio.WriteFile(outPath, []byte(content)); err != nil {
		return fmt.Errorf("failed to emit %s: %w", m.Name, err)
	}

	e.log("Converted %s -> %s", m.Name, outPath)
	return nil
}

// OutputPath derives the emitted file location from the model's structural
// path and the configured style.
func (e *Emitter) OutputPath(m *models.ModelFile) string {
	fileName := shared.CaseFileName(e.cfg.PathStyle, m.Name) + OutputExtension

	parts := []string{e.cfg.ConvertDirectory}
	if m.Structure != "" {
		for _, segment := range strings.Split(m.Structure, "/") {
			parts = append(parts, shared.CaseDirSegment(e.cfg.PathStyle, segment))
		}
	}
	parts = append(parts, fileName)
	return filepath.Join(parts...)
}

func (e *Emitter) header() string {
	if !e.cfg.AutoGeneratedTag {
		return ""
	}
	return autoGeneratedTag + "\n\n"
}

func (e *Emitter) renderEnum(m *models.ModelFile) string {
	var b strings.Builder
	b.WriteString(e.header())
	fmt.Fprintf(&b, "export enum %s {\n", m.Name)

	for _, entry := range m.EnumEntries {
		name := shared.ToCamelCase(entry.Name)
		switch {
		case e.cfg.EnumValues == config.EnumValuesString:
			fmt.Fprintf(&b, "%s%s = '%s',\n", indent, name, name)
		case !entry.IsImplicit:
			fmt.Fprintf(&b, "%s%s = %d,\n", indent, name, entry.NumericValue)
		default:
			// No value on purpose: the target's own auto-increment
			// continues from the last emitted explicit value.
			fmt.Fprintf(&b, "%s%s,\n", indent, name)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func (e *Emitter) renderInterface(m *models.ModelFile) string {
	var b strings.Builder
	b.WriteString(e.header())
	b.WriteString(e.renderImports(m))

	b.WriteString("export interface " + m.Name)
	if m.Inherits != "" {
		b.WriteString(" extends " + m.Inherits)
	}
	b.WriteString(" {\n")

	for _, prop := range m.Objects {
		if prop.IsPlaceholder() {
			continue
		}
		b.WriteString(indent + e.renderField(prop) + "\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func (e *Emitter) renderField(prop models.PropertyEntry) string {
	name := shared.ToCamelCase(prop.Name)

	optional := ""
	if prop.IsOptional {
		optional = "?"
	}

	if prop.IsContainer() {
		return fmt.Sprintf("%s%s: Map<%s, %s>;", name, optional, prop.Container.KeyType, prop.Container.ValueType)
	}

	suffix := ""
	if prop.IsArray {
		suffix = "[]"
	}
	return fmt.Sprintf("%s%s: %s%s;", name, optional, prop.Type, suffix)
}

// renderImports emits one de-duplicated import per distinct external type in
// first-use order: inheritance first, then properties, with both members of a
// map shape considered.
func (e *Emitter) renderImports(m *models.ModelFile) string {
	type importLine struct {
		name string
		path string
	}
	var lines []importLine
	seen := make(map[string]bool)

	add := func(name, path string) {
		if name == "" || path == "" || seen[name] {
			return
		}
		seen[name] = true
		lines = append(lines, importLine{name: name, path: path})
	}

	add(m.Inherits, m.InheritanceImportPath)
	for _, prop := range m.Objects {
		if prop.IsContainer() {
			if prop.Container.KeyUserDefined {
				add(prop.Container.KeyType, prop.Container.KeyImportPath)
			}
			if prop.Container.ValueUserDefined {
				add(prop.Container.ValueType, prop.Container.ValueImportPath)
			}
			continue
		}
		if prop.IsUserDefined {
			add(prop.Type, prop.ImportPath)
		}
	}

	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "import { %s } from '%s';\n", line.name, line.path)
	}
	b.WriteString("\n")
	return b.String()
}
