package hashfunc

// HashAlgorithm - Interface that permits a user of the HashMap to supply a custom native hash code
// for its particular type of keys.
type HashAlgorithm[K comparable] interface {
	// HashCode - Given key it returns the native 32 bits hash code of the key.
	// The HashMap spreads the returned value before using its low bits as bucket index, so an implementation
	// does not have to care about distribution over the low bits only.
	// Keys that are equal must return the same hash code.
	HashCode(key K) int32
}

// HashCoder - Interface that a key type can implement to supply its own native hash code to the default
// hash algorithm.
type HashCoder interface {
	// HashCode - Returns the native 32 bits hash code of the receiver
	HashCode() int32
}
