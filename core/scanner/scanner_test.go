package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanRootsSingleRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "order.cs"), "public class Order\n{\n}\n")
	writeFile(t, filepath.Join(root, "Common", "entityBase.cs"), "public class EntityBase\n{\n}\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")

	scan, err := NewScanner(nil).ScanRoots([]string{root})
	require.NoError(t, err)
	require.Len(t, scan.Models, 2)
	assert.Equal(t, root, scan.SharedAncestor)

	byName := map[string]string{}
	for _, m := range scan.Models {
		byName[m.Name] = m.Structure
		assert.Equal(t, root, m.Root)
		assert.NotEmpty(t, m.Lines)
	}

	// Names are case-normalized from the file base name; structure is the
	// containing directory relative to the root.
	assert.Equal(t, "", byName["Order"])
	assert.Equal(t, "Common", byName["EntityBase"])
}

func TestScanRootsSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "order.cs"), "public class Order\n{\n}\n")
	writeFile(t, filepath.Join(root, "bin", "junk.cs"), "public class Junk\n{\n}\n")
	writeFile(t, filepath.Join(root, "out", "generated.cs"), "public class Generated\n{\n}\n")

	scan, err := NewScanner([]string{"out"}).ScanRoots([]string{root})
	require.NoError(t, err)
	require.Len(t, scan.Models, 1)
	assert.Equal(t, "Order", scan.Models[0].Name)
}

func TestScanRootsMultipleRoots(t *testing.T) {
	base := t.TempDir()
	rootA := filepath.Join(base, "serviceA", "models")
	rootB := filepath.Join(base, "serviceB", "models")
	writeFile(t, filepath.Join(rootA, "foo.cs"), "public class Foo\n{\n}\n")
	writeFile(t, filepath.Join(rootB, "bar.cs"), "public class Bar\n{\n}\n")

	scan, err := NewScanner(nil).ScanRoots([]string{rootA, rootB})
	require.NoError(t, err)
	require.Len(t, scan.Models, 2)
	assert.Equal(t, base, scan.SharedAncestor)
}

func TestScanRootsMissingRoot(t *testing.T) {
	_, err := NewScanner(nil).ScanRoots([]string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
}

func TestSharedAncestor(t *testing.T) {
	tests := []struct {
		name     string
		roots    []string
		expected string
	}{
		{"single root", []string{"/a/b"}, "/a/b"},
		{"nested roots", []string{"/a/b", "/a/b/c"}, "/a/b"},
		{"siblings", []string{"/a/b/x", "/a/b/y"}, "/a/b"},
		// The prefix must never split a folder name.
		{"partial segment", []string{"/a/foobar", "/a/foobaz"}, "/a"},
		{"root only", []string{"/x", "/y"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SharedAncestor(tt.roots)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSharedAncestorDisjointRootsError(t *testing.T) {
	_, err := SharedAncestor([]string{`C:\work\a`, `D:\work\b`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no common ancestor")
}
