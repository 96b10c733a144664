package hashmap

// IllegalCapacity - Custom error to inform that a negative initial capacity was given
type IllegalCapacity struct {
	msg string
}

// Error - Used to notify that the initial capacity is illegal
func (E IllegalCapacity) Error() string {
	if E.msg == "" {
		return "illegal initial capacity"
	}
	return E.msg
}

// Is - Matches any IllegalCapacity regardless of message
func (E IllegalCapacity) Is(target error) bool {
	_, ok := target.(IllegalCapacity)
	return ok
}

// IllegalLoadFactor - Custom error to inform that a non-positive or NaN load factor was given
type IllegalLoadFactor struct {
	msg string
}

// Error - Used to notify that the load factor is illegal
func (E IllegalLoadFactor) Error() string {
	if E.msg == "" {
		return "illegal load factor"
	}
	return E.msg
}

// Is - Matches any IllegalLoadFactor regardless of message
func (E IllegalLoadFactor) Is(target error) bool {
	_, ok := target.(IllegalLoadFactor)
	return ok
}

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// ConcurrentModification - Custom error to inform that the hash map was structurally modified while iterating
type ConcurrentModification struct {
	msg string
}

// Error - Used to notify that the hash map was modified during iteration
func (C ConcurrentModification) Error() string {
	if C.msg == "" {
		return "hash map modified during iteration"
	}
	return C.msg
}

// Is - Matches any ConcurrentModification regardless of message
func (C ConcurrentModification) Is(target error) bool {
	_, ok := target.(ConcurrentModification)
	return ok
}
