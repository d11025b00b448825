package transform

import (
	"github.com/datakit-labs/seriesops/internal/utils/logger"
	"github.com/datakit-labs/seriesops/pkg/series"
)

// Pipeline applies a unit conversion followed by standardization as one
// unit of work. Each Process call is independent; a Pipeline holds no
// per-call state and is safe to share across goroutines.
type Pipeline struct {
	Factor            float64
	StandardizeParams StandardizeParams
}

type PipelineOption func(*Pipeline)

func WithConversionFactor(factor float64) PipelineOption {
	return func(p *Pipeline) {
		p.Factor = factor
	}
}

func WithStandardizeParams(params StandardizeParams) PipelineOption {
	return func(p *Pipeline) {
		p.StandardizeParams = params
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		Factor:            1.0,
		StandardizeParams: DefaultStandardizeParams(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pipeline) Process(s series.Series) series.Series {
	logger.Sugar().Infow("Processing with pipeline params", "factor", p.Factor, "excludeMissing", p.StandardizeParams.ExcludeMissing)
	converted := Convert(s, p.Factor)
	return Standardize(converted, WithExcludeMissing(p.StandardizeParams.ExcludeMissing))
}
