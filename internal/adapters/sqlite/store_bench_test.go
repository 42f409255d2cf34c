package sqlite

import (
	"fmt"
	"path/filepath"
	"testing"
)

// BenchmarkBatchWrite benchmarks stamping identity records for a 500 node subtree
func BenchmarkBatchWrite(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), "meta.db"), "bench")
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			b.Fatalf("failed to close store: %v", err)
		}
	}()

	b.ResetTimer()
	for b.Loop() {
		batch, err := s.Begin()
		if err != nil {
			b.Fatalf("begin failed: %v", err)
		}
		for i := range 500 {
			id := fmt.Sprintf("1:%d", i)
			if err := batch.Set(id, "sourceId", "2:1"); err != nil {
				b.Fatalf("set failed: %v", err)
			}
			if err := batch.Set(id, "indexPath", "root-0"); err != nil {
				b.Fatalf("set failed: %v", err)
			}
		}
		if err := batch.Commit(); err != nil {
			b.Fatalf("commit failed: %v", err)
		}
	}
}
