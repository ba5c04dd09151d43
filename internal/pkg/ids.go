package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const gameIDLimit = 100_000_000

// GenerateGameID returns a random eight-digit game identifier.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDLimit))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return fmt.Sprintf("%08d", n.Int64()), nil
}
