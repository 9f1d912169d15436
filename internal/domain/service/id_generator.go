package service

// IDGenerator produces random URL-safe identifiers.
type IDGenerator interface {
	// Generate returns a random identifier of exactly length characters.
	Generate(length int) (string, error)
}
