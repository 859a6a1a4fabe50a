package repository

// CacheRepository stores serialized engine results by input key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
