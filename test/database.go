package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpDatabase returns the path of a new SQLite database file below the
// test's temporary directory.
func TmpDatabase(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("tankbudget-%s.db", uuid.NewString()))
}
