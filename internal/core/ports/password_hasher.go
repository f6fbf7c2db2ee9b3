package ports

// PasswordHasher turns plain passwords into stored hashes and checks them back.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
