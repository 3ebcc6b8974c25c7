package idgenerator

import "io"

// Option configures an [IDGenerator].
type Option func(*IDGenerator)

// WithRandom sets the source of the 16 bytes each UUID is built from. A source
// that cannot fill them makes GenerateID fail. Defaults to [rand.Reader].
//
// [rand.Reader]: https://pkg.go.dev/crypto/rand#Reader
func WithRandom(r io.Reader) Option {
	return func(g *IDGenerator) {
		g.reader = r
	}
}
