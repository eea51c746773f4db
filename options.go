package chash

import (
	"fmt"

	"go.uber.org/zap"
)

// config collects the settings applied by Options. hasher is untyped so
// that Option itself does not need the table's type parameters.
type config struct {
	hasher any
	logger *zap.Logger
}

// Option configures a table at construction
type Option func(*config)

// WithHasher sets the hashing policy. Its key type must match the table's
// key type.
func WithHasher[K comparable](h Hasher[K]) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// WithHashFunc sets the hashing policy from a plain function
func WithHashFunc[K comparable](f func(K) uint64) Option {
	return WithHasher[K](HasherFunc[K](f))
}

// WithLogger sets the logger used to report bucket index growth.
// Tables log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func buildConfig[K comparable](opts []Option) (Hasher[K], *zap.Logger) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	var h Hasher[K]
	switch v := c.hasher.(type) {
	case nil:
		h = NewComparableHasher[K]()
	case Hasher[K]:
		h = v
	default:
		var zero K
		panic(fmt.Sprintf("chash: hasher %T cannot hash keys of type %T", c.hasher, zero))
	}

	logger := c.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return h, logger
}
