package model

// CatalogRecord is one resource as recorded by the collecting listener and
// persisted by the catalog store.
type CatalogRecord struct {
	RootSet string
	Source  Path
	Offset  string
	Name    string
	IsDir   bool
	Size    int64  // zero unless the content was read
	Hash    string // xxh3 fingerprint, empty unless the content was read
}

// Key identifies a record regardless of which root set produced it.
func (r CatalogRecord) Key() string {
	return string(r.Source) + "!" + r.Offset + "|" + r.Name
}
