package util

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// CreateTempFile writes content into a fresh file under t.TempDir and returns its path.
func CreateTempFile(t *testing.T, pattern string, content string) (string, func()) {
	t.Helper()
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, fmt.Sprintf(pattern, rand.Intn(100)+10))
	if err := os.WriteFile(tempFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return tempFile, func() {
		os.Remove(tempFile)
	}
}

// Pages converts string tokens to page references.
func Pages(tokens ...string) []PageRef {
	out := make([]PageRef, len(tokens))
	for i, tok := range tokens {
		out[i] = PageRef(tok)
	}
	return out
}
