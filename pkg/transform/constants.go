package transform

func DefaultStandardizeParams() StandardizeParams {
	return StandardizeParams{
		ExcludeMissing: false,
	}
}
