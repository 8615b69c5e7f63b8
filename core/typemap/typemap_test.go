package typemap

import "testing"

func TestMapCoversWholeTable(t *testing.T) {
	for source, expected := range Table() {
		if got := Map(source); got != expected {
			t.Errorf("Map(%q) = %q, want %q", source, got, expected)
		}
		if !IsPrimitive(source) {
			t.Errorf("IsPrimitive(%q) = false, want true", source)
		}
	}
}

func TestMapCategories(t *testing.T) {
	numeric := []string{"byte", "sbyte", "short", "ushort", "int", "uint", "long", "ulong", "float", "double", "decimal"}
	for _, source := range numeric {
		if got := Map(source); got != Number {
			t.Errorf("Map(%q) = %q, want %q", source, got, Number)
		}
	}

	strings := []string{"char", "string", "Guid"}
	for _, source := range strings {
		if got := Map(source); got != String {
			t.Errorf("Map(%q) = %q, want %q", source, got, String)
		}
	}

	if Map("bool") != Boolean {
		t.Errorf("bool should map to %q", Boolean)
	}
	if Map("DateTime") != Date || Map("DateTimeOffset") != Date {
		t.Errorf("date-time types should map to %q", Date)
	}
}

func TestMapUnknownFallsThroughToAny(t *testing.T) {
	for _, source := range []string{"object", "dynamic", "Stream", ""} {
		if got := Map(source); got != Any {
			t.Errorf("Map(%q) = %q, want %q", source, got, Any)
		}
	}
	if IsPrimitive("object") {
		t.Error("IsPrimitive(object) = true, want false")
	}
}
