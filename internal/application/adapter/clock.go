// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current instant. The dashboard use case resolves its
// period cutoff against an injected clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}
