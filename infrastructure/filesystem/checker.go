package filesystem

import (
	"os"

	"audioleft/domain/audio"
)

// Checker implements audio.FileChecker and audio.DirMaker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the path exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsRegular returns true if the path exists and is a regular file
func (c *Checker) IsRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// MkdirAll creates the directory along with any missing parents
func (c *Checker) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure Checker implements the filesystem ports
var (
	_ audio.FileChecker = (*Checker)(nil)
	_ audio.DirMaker    = (*Checker)(nil)
)
