package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/shiftbooks/timeclerk/pkg/errors"
)

// LoadMappings reads a per-client text-normalization mapping file.
// The file is YAML mapping column names to cleaned-value ->
// canonical-value tables:
//
//	employment_status:
//	  fulltime: full_time
//	  pt: part_time
//
// Client mapping tables extend the configured tables; entries for the
// same cleaned value override them.
func LoadMappings(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var tables map[string]map[string]string
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return tables, nil
}

// MergeTables overlays client mapping tables onto the base tables
// without mutating either input.
func MergeTables(base, overlay map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(base))
	for col, table := range base {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		out[col] = copied
	}
	for col, table := range overlay {
		if out[col] == nil {
			out[col] = make(map[string]string, len(table))
		}
		for k, v := range table {
			out[col][k] = v
		}
	}
	return out
}
