package catalog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/hospitium/core"
)

// documentSuffix is appended to every synthetic index document so generic
// healthcare phrasings ("medical center near me") still land on catalog terms.
const documentSuffix = "hospital healthcare facility medical center"

var requiredColumns = []string{"hospital name", "address", "city"}

// Catalog is the authoritative, immutable set of hospital records the
// assistant searches over.
type Catalog struct {
	records []core.HospitalRecord
	id      core.ID
	demo    bool
}

// LoadFile parses a CSV hospital dataset. It returns an error if the file is
// unreadable or the required columns are missing; callers wanting the demo
// fallback should use Load instead.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnreadable, err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw CSV bytes. The catalog ID is a content hash
// of the bytes, so the same dataset always yields the same ID.
func Parse(raw []byte) (*Catalog, error) {
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrCatalogMalformed)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]core.HospitalRecord, 0, len(rows)-1)
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		record, ok := parseRow(row, columns)
		if !ok {
			continue
		}
		key := record.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		record.StableIndex = len(records)
		records = append(records, record)
	}

	return &Catalog{
		records: records,
		id:      core.IDFromContent(string(raw)),
	}, nil
}

// Load loads a catalog from path, falling back to the built-in demo catalog
// when the dataset is unreadable or malformed. It never fails.
func Load(path string) *Catalog {
	cat, err := LoadFile(path)
	if err != nil {
		slog.Default().Warn("falling back to demo catalog", "path", path, "err", err)
		return Demo()
	}
	slog.Default().Info("catalog loaded", "path", path, "records", len(cat.records))
	return cat
}

// mapColumns resolves the required column positions from a header row.
// Header names are matched case-insensitively after trimming whitespace.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMissingColumns, name)
		}
	}
	return columns, nil
}

// parseRow extracts a record from a data row. Rows too short to carry the
// required columns, or failing record validation, are skipped.
func parseRow(row []string, columns map[string]int) (core.HospitalRecord, bool) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	record := core.HospitalRecord{
		Name:    field("hospital name"),
		City:    field("city"),
		Address: field("address"),
	}
	if err := core.ValidateRecord(&record); err != nil {
		return core.HospitalRecord{}, false
	}
	return record, true
}

// Records returns the deduplicated records in stable catalog order.
// The returned slice must not be mutated.
func (c *Catalog) Records() []core.HospitalRecord {
	return c.records
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ID returns the content hash identifying this exact dataset revision.
func (c *Catalog) ID() core.ID {
	return c.id
}

// IsDemo reports whether this is the built-in fallback catalog.
func (c *Catalog) IsDemo() bool {
	return c.demo
}

// Documents returns one synthetic text blob per record, in catalog order.
// These are what the text index vectorizes; they are never shown to users.
func (c *Catalog) Documents() []string {
	docs := make([]string, len(c.records))
	for i, r := range c.records {
		if c.demo {
			docs[i] = fmt.Sprintf("%s %s %s hospital", r.Name, r.City, r.Address)
			continue
		}
		docs[i] = fmt.Sprintf("%s %s %s %s", r.Name, r.City, r.Address, documentSuffix)
	}
	return docs
}
