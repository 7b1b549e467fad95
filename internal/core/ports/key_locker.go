package ports

// KeyLocker serializes read-modify-write sequences on one aggregate key.
// Lock blocks until the key is free and returns the function that releases it.
type KeyLocker interface {
	Lock(key string) (unlock func())
}
