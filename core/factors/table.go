// Package factors provides immutable emission factor snapshots.
// A snapshot is write-once: built, content-hashed, sealed, then only
// read. Request-time code never mutates a table; hot reload swaps the
// whole snapshot through the Store.
package factors

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"time"

	"ecotrack/core/types"
)

// Factor is one emission intensity entry
type Factor struct {
	// Value is the emission intensity in kgCO2e per Unit
	Value float64 `json:"value"`

	// Unit is the quantity unit the factor applies to (km, kg, kWh, item)
	Unit string `json:"unit"`
}

// Source indicates where factor data came from
type Source int

const (
	// SourceEmbedded means the compiled-in default catalog
	SourceEmbedded Source = iota

	// SourceFile means a factor file supplied at startup
	SourceFile
)

// String returns the source name
func (s Source) String() string {
	switch s {
	case SourceEmbedded:
		return "embedded"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// Table is an immutable factor snapshot.
// Lookup misses are a defined absence, never an error: the baseline
// aggregator simply skips the contribution.
type Table struct {
	version     string
	source      Source
	createdAt   time.Time
	contentHash string
	entries     map[types.Category]map[string]Factor
	sealed      bool
}

// Lookup returns the factor for a (category, activity) pair.
// The second return is false when no factor is configured.
func (t *Table) Lookup(category types.Category, activity string) (Factor, bool) {
	byActivity, ok := t.entries[category]
	if !ok {
		return Factor{}, false
	}
	f, ok := byActivity[activity]
	return f, ok
}

// Version returns the factor catalog version
func (t *Table) Version() string {
	return t.version
}

// Source returns where the table was loaded from
func (t *Table) Source() Source {
	return t.source
}

// CreatedAt returns when the snapshot was built
func (t *Table) CreatedAt() time.Time {
	return t.createdAt
}

// ContentHash returns the hex SHA-256 over all entries
func (t *Table) ContentHash() string {
	return t.contentHash
}

// Entry is one catalog row, used for listing and reporting
type Entry struct {
	Category types.Category `json:"category"`
	Activity string         `json:"activity"`
	Factor   Factor         `json:"factor"`
}

// Entries returns all catalog rows sorted by category then activity
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Len())
	for cat, byActivity := range t.entries {
		for activity, f := range byActivity {
			out = append(out, Entry{Category: cat, Activity: activity, Factor: f})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Activity < out[j].Activity
	})
	return out
}

// Len returns the number of factor entries
func (t *Table) Len() int {
	n := 0
	for _, byActivity := range t.entries {
		n += len(byActivity)
	}
	return n
}

// entryKey is a deterministic string form for hashing
func entryKey(cat types.Category, activity string) string {
	return string(cat) + "/" + activity
}

// Builder assembles a factor table snapshot
type Builder struct {
	version string
	source  Source
	entries map[types.Category]map[string]Factor
}

// NewBuilder creates a builder for the given catalog version
func NewBuilder(version string) *Builder {
	return &Builder{
		version: version,
		source:  SourceEmbedded,
		entries: make(map[types.Category]map[string]Factor),
	}
}

// WithSource sets the data source
func (b *Builder) WithSource(source Source) *Builder {
	b.source = source
	return b
}

// Add records a factor for a (category, activity) pair.
// A later Add for the same pair overrides the earlier one, which is
// how file catalogs override embedded defaults.
func (b *Builder) Add(category types.Category, activity string, value float64, unit string) *Builder {
	byActivity, ok := b.entries[category]
	if !ok {
		byActivity = make(map[string]Factor)
		b.entries[category] = byActivity
	}
	byActivity[activity] = Factor{Value: value, Unit: unit}
	return b
}

// Build seals the snapshot and computes its content hash
func (b *Builder) Build() *Table {
	entries := make(map[types.Category]map[string]Factor, len(b.entries))
	keys := make([]string, 0)
	for cat, byActivity := range b.entries {
		cm := make(map[string]Factor, len(byActivity))
		for activity, f := range byActivity {
			cm[activity] = f
			keys = append(keys, entryKey(cat, activity))
		}
		entries[cat] = cm
	}

	// Hash in sorted key order for determinism
	sort.Strings(keys)
	h := sha256.New()
	h.Write([]byte(b.version))
	for _, key := range keys {
		cat, activity := splitEntryKey(key)
		f := entries[cat][activity]
		h.Write([]byte(key))
		h.Write([]byte(strconv.FormatFloat(f.Value, 'g', -1, 64)))
		h.Write([]byte(f.Unit))
	}

	return &Table{
		version:     b.version,
		source:      b.source,
		createdAt:   time.Now().UTC(),
		contentHash: hex.EncodeToString(h.Sum(nil)),
		entries:     entries,
		sealed:      true,
	}
}

func splitEntryKey(key string) (types.Category, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return types.Category(key[:i]), key[i+1:]
		}
	}
	panic(fmt.Sprintf("malformed factor entry key: %q", key))
}
