package tr

// Option configures a cell at construction.
type Option func(*cellOptions)

type cellOptions struct {
	key     string
	onError ErrorHandler
}

// WithKey tags the cell with a key used in error reports and by Registry.
func WithKey(key string) Option {
	return func(o *cellOptions) {
		o.key = key
	}
}

// WithErrorHandler routes the cell's swallowed errors to h instead of the
// package handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *cellOptions) {
		o.onError = h
	}
}

func applyOptions(opts []Option) cellOptions {
	var o cellOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
