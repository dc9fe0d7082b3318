package augment

import "errors"

// Every failure of the augmentation client maps onto one of these sentinels;
// callers match them with errors.Is. Causes are attached with %w wrapping.
var (
	// ErrUnavailable: no service credential was configured at startup, so no
	// network call was attempted.
	ErrUnavailable = errors.New("augmentation service unavailable")

	// ErrTransport: the call to the generative service itself failed.
	ErrTransport = errors.New("augmentation transport failure")

	// ErrMalformedResponse: the service answered, but the output did not
	// match the expected shape. The whole response is discarded; partial
	// results are never returned.
	ErrMalformedResponse = errors.New("malformed augmentation response")
)
