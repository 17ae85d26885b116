package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet for league join codes. Ambiguous characters (0/O, 1/I/L) are
// excluded so codes survive being read out loud on a couch.
const joinCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const JoinCodeLength = 8

// GenerateJoinCode returns a new random league join code
func GenerateJoinCode() (string, error) {
	return gonanoid.Generate(joinCodeAlphabet, JoinCodeLength)
}
