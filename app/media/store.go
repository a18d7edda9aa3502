// Package media owns stored image files: naming, acceptance, and the
// best-effort cleanup contract used when records drop their reference to a
// file. Deletes tolerate a file that is already gone; any other fault
// propagates.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is a flat namespace of uploaded files addressed by generated name.
type Store interface {
	// Save writes the file under name. size is the exact content length.
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	// Delete removes the file. A file that is already absent counts as
	// success; the caller's only invariant is that no reference dangles.
	Delete(ctx context.Context, name string) error
	// Exists reports whether a file with the given name is present.
	Exists(ctx context.Context, name string) (bool, error)
}

// GenerateFilename produces the stored name for an upload: a millisecond
// timestamp plus a random suffix with the original extension, never the
// client-supplied name itself.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
