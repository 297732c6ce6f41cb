package dataio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shiftbooks/timeclerk/internal/workspace"
	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Store loads and saves a client's datasets through the workspace
// folder layout. Dataset names are passed without extension; loading
// tries .csv first, then .xlsx.
type Store struct {
	ws workspace.Client
}

// NewStore creates a store for one client.
func NewStore(ws workspace.Client) *Store {
	return &Store{ws: ws}
}

// LoadRaw loads a raw client extract.
func (s *Store) LoadRaw(name string) (*timecard.Dataset, error) {
	return load(s.ws.RawDir(), name)
}

// LoadCorrected loads a corrected extract.
func (s *Store) LoadCorrected(name string) (*timecard.Dataset, error) {
	return load(s.ws.CorrectedDir(), name)
}

// LoadProcessed loads a cleaned dataset.
func (s *Store) LoadProcessed(name string) (*timecard.Dataset, error) {
	return load(s.ws.ProcessedDir(), name)
}

// SaveProcessed saves a cleaned dataset as CSV.
func (s *Store) SaveProcessed(name string, ds *timecard.Dataset) error {
	return WriteCSV(filepath.Join(s.ws.ProcessedDir(), name+".csv"), ds, false)
}

// SaveFlagged saves a quality-flagged dataset, including the
// data_issues column, beside the cleaned data.
func (s *Store) SaveFlagged(name string, ds *timecard.Dataset) error {
	return WriteCSV(filepath.Join(s.ws.ProcessedDir(), name+"_flagged.csv"), ds, true)
}

// load resolves a dataset name to a file in dir and reads it.
func load(dir, name string) (*timecard.Dataset, error) {
	// A name with an explicit extension is used as-is.
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(filepath.Join(dir, name))
	case ".xlsx":
		return ReadXLSX(filepath.Join(dir, name))
	}

	csvPath := filepath.Join(dir, name+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return ReadCSV(csvPath)
	}
	xlsxPath := filepath.Join(dir, name+".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return ReadXLSX(xlsxPath)
	}
	return nil, errors.WrapIO("open", csvPath, errors.ErrNotFound)
}
