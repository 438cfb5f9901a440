package repository

// Metrics abstracts observability recording so engines and use cases do not
// depend on a concrete metrics backend.
type Metrics interface {
	RecordChartBuilt()
	RecordHoroscope(kind string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordCache(hit bool)
}

// NoopMetrics satisfies Metrics while recording nothing. Used in tests and as
// a default when metrics are disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordChartBuilt()             {}
func (NoopMetrics) RecordHoroscope(string)        {}
func (NoopMetrics) RecordError(string)            {}
func (NoopMetrics) RecordLatency(string, float64) {}
func (NoopMetrics) RecordCache(bool)              {}
