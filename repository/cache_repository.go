package repository

// CacheRepository stores JSON-encoded simulation runs by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	// Delete evicts an entry; deleting a missing key is not an error.
	Delete(key string) error
}
