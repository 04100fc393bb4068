package pipeline

// Deduplicator suppresses records whose URL was already emitted in this
// run. The seen set lives on the value, not in a package global, so
// separate runs in one process cannot cross-contaminate.
type Deduplicator struct {
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Admit reports whether the record should be emitted and, if so, marks its
// URL as seen. First occurrence wins. Records without a URL are never
// deduplicated against each other and always pass.
func (d *Deduplicator) Admit(key string) bool {
	if key == "" {
		return true
	}
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}
