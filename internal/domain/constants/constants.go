// Package constants holds identifiers shared across layers.
package constants

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// AccountIDLength is the number of characters in a generated account identifier.
	AccountIDLength = 16

	// MaxPasswordBytes is the longest credential bcrypt accepts, counted in bytes.
	MaxPasswordBytes = 72

	// HeaderRequestID carries the request identifier across services.
	HeaderRequestID = "X-Request-Id"
)
