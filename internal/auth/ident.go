package auth

import "crypto/rand"

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a random alphanumeric identifier of the given length.
// User ids on the wire are 15 characters.
func GenerateID(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	id := make([]byte, length)
	for i, b := range bytes {
		id[i] = idCharset[int(b)%len(idCharset)]
	}
	return string(id), nil
}
