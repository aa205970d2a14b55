package security

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredName builds the on-disk name for an upload: a random UUID with
// the original extension, so user-supplied names never touch the
// filesystem.
func StoredName(originalName string) string {
	extension := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + extension
}
