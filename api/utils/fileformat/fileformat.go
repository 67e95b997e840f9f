package fileformat

import (
	"path/filepath"
	"strings"

	"github.com/twinj/uuid"
)

// UniqueFormat replaces the base name of an uploaded file with a random one,
// keeping the lower-cased extension.
func UniqueFormat(fn string) string {
	ext := strings.ToLower(filepath.Ext(fn))
	return uuid.NewV4().String() + ext
}
