package lingo

// LocaleKey identifies one cache entry: a translation key within a locale.
// Two LocaleKeys are equal iff both fields are equal.
type LocaleKey struct {
	LocaleID string // Locale identifier (e.g., "es_ES")
	Key      string // Translation key
}

// Token returns the dedup token for this entry, used by the pending set to
// guard against duplicate in-flight fills.
func (lk LocaleKey) Token() string {
	return lk.LocaleID + "::" + lk.Key
}

// Snapshot is the serializable form of the store: locale -> key -> text.
// All leaves are strings.
type Snapshot map[string]map[string]string

// RestoreResult contains statistics about a snapshot restore.
type RestoreResult struct {
	Merged  int // Entries merged into the store
	Skipped int // Malformed entries dropped
}
