// Package typemap holds the fixed table from C# primitive types to their
// TypeScript counterparts. Anything outside the table maps to "any".
package typemap

// TypeScript primitive categories.
const (
	Number  = "number"
	Boolean = "boolean"
	String  = "string"
	Date    = "Date"
	Any     = "any"
)

var primitives = map[string]string{
	"byte":    Number,
	"sbyte":   Number,
	"short":   Number,
	"ushort":  Number,
	"int":     Number,
	"uint":    Number,
	"long":    Number,
	"ulong":   Number,
	"float":   Number,
	"double":  Number,
	"decimal": Number,

	"bool": Boolean,

	"char":   String,
	"string": String,
	"Guid":   String,

	"DateTime":       Date,
	"DateTimeOffset": Date,
}

// Map resolves a source primitive name to its TypeScript type. The mapping is
// total: unknown names fall through to "any".
func Map(sourceType string) string {
	if ts, ok := primitives[sourceType]; ok {
		return ts
	}
	return Any
}

// IsPrimitive reports whether sourceType has an entry in the table.
func IsPrimitive(sourceType string) bool {
	_, ok := primitives[sourceType]
	return ok
}

// Table returns a copy of the full mapping, used by tests to enumerate every
// entry.
func Table() map[string]string {
	out := make(map[string]string, len(primitives))
	for k, v := range primitives {
		out[k] = v
	}
	return out
}
