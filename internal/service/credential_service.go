package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides how a password is stored in users.password_hash
// and how a login attempt is checked against it.
type CredentialVerifier interface {
	Encode(password string) (string, error)
	Verify(stored, supplied string) bool
}

// PlaintextComparison stores the password as given and compares by exact
// equality. It exists for compatibility with databases that already hold
// plaintext credentials and must not be used anywhere else.
type PlaintextComparison struct{}

func NewPlaintextComparison() *PlaintextComparison {
	return &PlaintextComparison{}
}

func (PlaintextComparison) Encode(password string) (string, error) {
	return password, nil
}

func (PlaintextComparison) Verify(stored, supplied string) bool {
	return stored == supplied
}

// HashedComparison stores bcrypt hashes
type HashedComparison struct {
	cost int
}

func NewHashedComparison(cost int) *HashedComparison {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashedComparison{cost: cost}
}

func (h *HashedComparison) Encode(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *HashedComparison) Verify(stored, supplied string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
	return err == nil
}

var ErrUnknownCredentialMode = errors.New("unknown credential mode")

// NewCredentialVerifier maps a configured mode name to its verifier
func NewCredentialVerifier(mode string, bcryptCost int) (CredentialVerifier, error) {
	switch mode {
	case "", "plaintext":
		return NewPlaintextComparison(), nil
	case "bcrypt":
		return NewHashedComparison(bcryptCost), nil
	default:
		return nil, ErrUnknownCredentialMode
	}
}
