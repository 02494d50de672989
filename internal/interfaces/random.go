package interfaces

// RandomSource supplies the substitution symbols used when expanding
// placeholder characters in a unique-name template. Entropy quality only
// affects collision probability, never correctness.
type RandomSource interface {
	// Read fills p with random bytes.
	Read(p []byte) (int, error)
}
