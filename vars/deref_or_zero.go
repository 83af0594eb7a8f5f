package vars

// DerefOrZero reads an optional value, as returned for unset flags and absent config keys.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}
