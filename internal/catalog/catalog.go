// Package catalog holds the fixed book catalogs (scripture canon, apocrypha,
// author libraries) and resolves free-text book names to entries.
package catalog

// Testament tags an entry as Old or New Testament. Author-library entries
// carry TestamentNone.
type Testament string

const (
	TestamentOld  Testament = "old"
	TestamentNew  Testament = "new"
	TestamentNone Testament = ""
)

// ID identifies one catalog.
type ID string

const (
	Scripture ID = "bible"
	Apocrypha ID = "apocrypha"
	White     ID = "ellen"
	Silva     ID = "rodrigo"
	Borges    ID = "michelson"
	Bunyan    ID = "bunyan"
	Ferguson  ID = "ferguson"
	Finney    ID = "finney"
)

// Entry is a single book of a catalog.
type Entry struct {
	Name      string
	Testament Testament
	Chapters  int
}

// Catalog is a named, ordered collection of entries.
type Catalog struct {
	ID      ID
	Title   string
	Entries []Entry
}

// priority is the fixed scan order for name resolution. A name colliding
// across catalogs resolves to the first catalog listed here.
var priority = []*Catalog{
	&ScriptureCatalog,
	&ApocryphaCatalog,
	&WhiteLibrary,
	&SilvaLibrary,
	&BorgesLibrary,
	&BunyanLibrary,
	&FergusonLibrary,
	&FinneyLibrary,
}

// All returns the catalogs in priority order.
func All() []*Catalog {
	out := make([]*Catalog, len(priority))
	copy(out, priority)
	return out
}

// Libraries returns only the author libraries, in priority order.
func Libraries() []*Catalog {
	return []*Catalog{
		&WhiteLibrary, &SilvaLibrary, &BorgesLibrary,
		&BunyanLibrary, &FergusonLibrary, &FinneyLibrary,
	}
}

// ByID returns the catalog with the given id, or nil.
func ByID(id ID) *Catalog {
	for _, c := range priority {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Find scans all catalogs in priority order and returns the first entry
// whose name matches, along with the owning catalog id. Returns nil when no
// catalog contains the name; callers render a listing view in that case.
func Find(name string) (*Entry, ID) {
	for _, c := range priority {
		if e := c.Find(name); e != nil {
			return e, c.ID
		}
	}
	return nil, ""
}

// FindIn looks a name up inside a single catalog. Use this instead of Find
// when the catalog is already known; it sidesteps the scan-order tie-break
// for names that repeat across catalogs.
func FindIn(id ID, name string) *Entry {
	c := ByID(id)
	if c == nil {
		return nil
	}
	return c.Find(name)
}

// Find returns the entry with the given name, or nil. Linear scan; catalogs
// are tens of entries and lookups happen once per navigation.
func (c *Catalog) Find(name string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			return &c.Entries[i]
		}
	}
	return nil
}
