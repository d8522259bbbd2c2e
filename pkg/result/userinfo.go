package result

// UserInfo is the key-value bag attached to a result.
type UserInfo map[string]any

// Value returns the raw value stored under key.
func (u UserInfo) Value(key string) (any, bool) {
	if u == nil {
		return nil, false
	}
	value, ok := u[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Set stores value under key, allocating the bag on first write.
func (u *UserInfo) Set(key string, value any) {
	if *u == nil {
		*u = make(UserInfo)
	}
	(*u)[key] = value
}

// Delete removes key from the bag.
func (u UserInfo) Delete(key string) {
	delete(u, key)
}

// String returns the string stored under key.
func (u UserInfo) String(key string) (string, bool) {
	return Lookup[string](u, key)
}

// Clone returns a shallow copy of the bag. A nil bag clones to nil.
func (u UserInfo) Clone() UserInfo {
	if u == nil {
		return nil
	}
	cloned := make(UserInfo, len(u))
	for key, value := range u {
		cloned[key] = value
	}
	return cloned
}

// Lookup returns the value stored under key when it holds a T. Missing keys,
// nil values and values of any other type all report false.
func Lookup[T any](info UserInfo, key string) (T, bool) {
	var zero T
	value, ok := info.Value(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
