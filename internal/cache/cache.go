package cache

// Cacher stores rendered values for a while.
type Cacher[T any] interface {
	Set(key string, val T)
	Get(key string) (val T, found bool)
}
