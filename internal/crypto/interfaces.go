package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	// Hash returns the encoded hash of password. Passwords longer than
	// [MaxPasswordBytes] are rejected with [ErrPasswordTooLong].
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch returns
	// [ErrMismatchedPassword]; any other error means hash is unusable.
	Compare(hash, password string) error

	// CompareDummy spends the same time as a real Compare without a stored
	// hash, so unknown accounts are indistinguishable by latency.
	CompareDummy(password string)
}
