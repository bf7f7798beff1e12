package ascii

import (
	"fmt"
	"sort"
)

// GlyphEntry pairs a glyph with the lowest luminance it stands for.
type GlyphEntry struct {
	Glyph     string
	Luminance float32
}

// GlyphTable maps luminance to glyphs. Entries are sorted by descending
// luminance; the table is read-only once built and safe to share.
type GlyphTable struct {
	entries []GlyphEntry
}

// DefaultGlyphMap returns a copy of the built-in mapping, from space (1.0)
// down to '@' (0.0).
func DefaultGlyphMap() map[string]float32 {
	return map[string]float32{
		" ": 1.0,
		"`": 0.95,
		".": 0.92,
		",": 0.9,
		"-": 0.8,
		"~": 0.75,
		"+": 0.7,
		"<": 0.65,
		">": 0.6,
		"o": 0.55,
		"=": 0.5,
		"*": 0.35,
		"%": 0.3,
		"X": 0.1,
		"@": 0.0,
	}
}

// DefaultGlyphTable builds a table from DefaultGlyphMap.
func DefaultGlyphTable() *GlyphTable {
	table, err := NewGlyphTable(DefaultGlyphMap())
	if err != nil {
		panic(err)
	}
	return table
}

// NewGlyphTable builds a table from a glyph to luminance mapping.
// Equal thresholds are ordered by glyph so the result does not depend on map
// iteration order.
func NewGlyphTable(mapping map[string]float32) (*GlyphTable, error) {
	if len(mapping) == 0 {
		return nil, fmt.Errorf("glyph table: %w", ErrEmptyGlyphTable)
	}

	entries := make([]GlyphEntry, 0, len(mapping))
	for glyph, luminance := range mapping {
		entries = append(entries, GlyphEntry{Glyph: glyph, Luminance: luminance})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Luminance != entries[j].Luminance {
			return entries[i].Luminance > entries[j].Luminance
		}
		return entries[i].Glyph < entries[j].Glyph
	})

	return &GlyphTable{entries: entries}, nil
}

// Glyph returns the glyph of the first entry whose threshold is met by l.
// When l is below every threshold the brightest entry is returned.
func (t *GlyphTable) Glyph(l float32) string {
	index := 0
	for i, entry := range t.entries {
		if l >= entry.Luminance {
			index = i
			break
		}
	}
	return t.entries[index].Glyph
}

// Entries returns a copy of the sorted entries.
func (t *GlyphTable) Entries() []GlyphEntry {
	out := make([]GlyphEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *GlyphTable) Len() int { return len(t.entries) }
