//go:build go1.18
// +build go1.18

package table_test

import (
	"testing"

	"github.com/shapestone/shape-table/pkg/table"
)

// FuzzDetect checks that Detect never panics and that numeric results
// render back to a number Detect classifies the same way.
// Run with: go test -fuzz=FuzzDetect -fuzztime=30s ./pkg/table
func FuzzDetect(f *testing.F) {
	seeds := []string{"", "\"", "\"\"", "42", "-3.5", "3.5.1", "+", "-.", "abc", "\"7\"", "1e5"}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, token string) {
		v, err := table.Detect(token)
		if err != nil {
			return
		}
		if v.Kind() == table.KindString {
			return
		}
		again, err := table.Detect(v.String())
		if err != nil {
			t.Fatalf("Detect(%q) re-detect of %q failed: %v", token, v.String(), err)
		}
		if v.Kind() == table.KindInteger && !again.Equal(v) {
			t.Errorf("integer %v re-detected as %s(%v)", v, again.Kind(), again)
		}
	})
}
