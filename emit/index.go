// SPDX-License-Identifier: EPL-2.0

package emit

import "github.com/ik5/pcmtab"

// Entry is one registered table.
type Entry struct {
	// Name is the source file name, the key for Lookup.
	Name string
	// Ident is the symbol prefix and AudioIndex enumerator.
	Ident string
	// Header is the table's header file name.
	Header string
}

// Index is the ordered registry of tables generated in one run. An
// entry's position is its AudioIndex value.
type Index struct {
	Format  pcmtab.Format
	Entries []Entry
}

// NewIndex registers tables in the given order.
func NewIndex(f pcmtab.Format, tables []*pcmtab.Table) Index {
	idx := Index{Format: f, Entries: make([]Entry, 0, len(tables))}
	for _, t := range tables {
		idx.Add(t)
	}
	return idx
}

// Add appends t as the next position.
func (idx *Index) Add(t *pcmtab.Table) {
	idx.Entries = append(idx.Entries, Entry{
		Name:   t.Name,
		Ident:  t.Ident,
		Header: t.HeaderName(),
	})
}

func (idx Index) Len() int { return len(idx.Entries) }

// At returns the entry at position i. Out of range positions report false.
func (idx Index) At(i int) (Entry, bool) {
	if i < 0 || i >= len(idx.Entries) {
		return Entry{}, false
	}
	return idx.Entries[i], true
}

// Lookup returns the position of the first entry named name.
func (idx Index) Lookup(name string) (int, bool) {
	for i, e := range idx.Entries {
		if e.Name == name {
			return i, true
		}
	}
	return -1, false
}
