// Package workspace manages the per-client folder layout under the
// data root. Every client owns a fixed tree of data and report
// folders; loaders and report writers resolve paths through this
// package instead of assembling them ad hoc.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/logging"
)

// Client resolves paths inside one client's folder tree.
type Client struct {
	Root string // data root directory
	Name string // client folder name
}

// New creates a path resolver for a client. It does not touch the
// filesystem.
func New(root, name string) Client {
	return Client{Root: root, Name: name}
}

// Dir returns the client's base directory.
func (c Client) Dir() string {
	return filepath.Join(c.Root, c.Name)
}

// RawDir returns the directory of raw client extracts.
func (c Client) RawDir() string {
	return filepath.Join(c.Dir(), "data", "raw")
}

// ProcessedDir returns the directory of cleaned datasets.
func (c Client) ProcessedDir() string {
	return filepath.Join(c.Dir(), "data", "processed")
}

// CorrectedDir returns the directory of corrected extracts.
func (c Client) CorrectedDir() string {
	return filepath.Join(c.Dir(), "data", "corrected")
}

// MappingDir returns the directory of client mapping tables.
func (c Client) MappingDir() string {
	return filepath.Join(c.Dir(), "data", "mapping")
}

// CompanyReportDir returns the directory of company-level reports.
func (c Client) CompanyReportDir() string {
	return filepath.Join(c.Dir(), "report", "company_level_report")
}

// IncompleteRowsDir returns the directory of incomplete-row reports.
func (c Client) IncompleteRowsDir() string {
	return filepath.Join(c.Dir(), "report", "incomplete_rows")
}

// dirs returns every directory in the client tree.
func (c Client) dirs() []string {
	return []string{
		c.RawDir(),
		c.ProcessedDir(),
		c.CorrectedDir(),
		c.MappingDir(),
		c.CompanyReportDir(),
		c.IncompleteRowsDir(),
	}
}

// validate rejects client names that would resolve outside the data
// root or shadow the tree layout.
func (c Client) validate() error {
	if c.Name == "" {
		return errors.NewValidationError("client", c.Name, "name must not be empty")
	}
	if c.Name == "." || c.Name == ".." || strings.ContainsAny(c.Name, `/\`) {
		return errors.NewValidationError("client", c.Name, "name must be a plain folder name")
	}
	return nil
}

// Create builds the client folder structure. An already-existing
// client directory is an error so a new client never silently shares
// an existing one's data.
func (c Client) Create() error {
	if err := c.validate(); err != nil {
		return err
	}
	if _, err := os.Stat(c.Dir()); err == nil {
		return errors.WrapIO("create", c.Dir(), errors.ErrAlreadyExists)
	}

	for _, dir := range c.dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapIO("create", dir, err)
		}
		logging.Debug().Str("dir", dir).Msg("Created client directory")
	}
	logging.Info().Str("client", c.Name).Msg("Client folder structure created")
	return nil
}

// Check verifies the client tree exists. Report writers call it so a
// missing folder fails before any output is produced.
func (c Client) Check() error {
	for _, dir := range c.dirs() {
		if _, err := os.Stat(dir); err != nil {
			return errors.WrapIO("open", dir, errors.ErrNotFound)
		}
	}
	return nil
}
