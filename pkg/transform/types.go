package transform

// StandardizeParams controls the missing-value policy of Standardize.
type StandardizeParams struct {
	// ExcludeMissing drops missing observations from the mean and
	// standard-deviation computation. When false, any missing
	// observation leaves both statistics undefined.
	ExcludeMissing bool
}

type StandardizeOption func(*StandardizeParams)

func WithExcludeMissing(exclude bool) StandardizeOption {
	return func(p *StandardizeParams) {
		p.ExcludeMissing = exclude
	}
}
