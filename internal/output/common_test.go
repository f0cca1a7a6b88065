package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		maxLen   int
		expected string
	}{
		{name: "Short message", msg: "hello", maxLen: 40, expected: "hello"},
		{name: "Exact length", msg: "1234567890", maxLen: 10, expected: "1234567890"},
		{name: "Over max length", msg: "a very long message here", maxLen: 10, expected: "a very ..."},
		{name: "Empty message", msg: "", maxLen: 40, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateMessage(tt.msg, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateMessage(%q, %d) = %q, expected %q", tt.msg, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestOpenOutputWriter(t *testing.T) {
	t.Run("Stdout", func(t *testing.T) {
		out, file, err := openOutputWriter("")
		if err != nil {
			t.Fatalf("openOutputWriter: %v", err)
		}
		if out != os.Stdout || file != nil {
			t.Fatalf("expected stdout without file, got %v %v", out, file)
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "graph.dot")
		_, file, err := openOutputWriter(path)
		if err != nil {
			t.Fatalf("openOutputWriter: %v", err)
		}
		defer file.Close()
		if file == nil || file.Name() != path {
			t.Fatalf("expected file %s, got %v", path, file)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "graph.dot")
		if _, _, err := openOutputWriter(path); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestShortIDs(t *testing.T) {
	ids := shortIDs(sampleReport().Graph, 4)
	if len(ids) != 3 || ids[shaBase] != "1111" || ids[shaLeft] != "2222" {
		t.Errorf("shortIDs = %v", ids)
	}
}
