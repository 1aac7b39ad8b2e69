package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword is the explicit hashing step invoked before a user record is
// persisted. Hashing never happens as a persistence-layer side effect.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
