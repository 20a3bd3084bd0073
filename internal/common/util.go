package common

// WipeByteArray zeroes b. The login and register prompts call it on the
// password buffer once the credentials have been handed to the session.
func WipeByteArray(b []byte) {
	clear(b)
}
