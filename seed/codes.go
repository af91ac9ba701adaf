package seed

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewInviteCode returns a short join code for a workspace.
func NewInviteCode() string {
	return gonanoid.MustGenerate(inviteAlphabet, 8)
}

// taskCodeSuffix returns the random tail of a generated task code. The
// timestamp and loop index already make codes unique; the suffix keeps
// them unique across runs started in the same millisecond.
func taskCodeSuffix() string {
	return gonanoid.MustGenerate(suffixAlphabet, 4)
}
