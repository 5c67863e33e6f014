package domain

import "time"

// BodyMetric is one body measurement. At least one of Weight/BellySize must
// be present at creation; the caller enforces that, not the store. Metrics
// are immutable once created except for deletion.
type BodyMetric struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recordedAt"`
	Weight     *float64  `json:"weight,omitempty"`
	BellySize  *float64  `json:"bellySize,omitempty"`
}

// MetricCollection is the durable document of the metrics collection.
type MetricCollection struct {
	Metrics []BodyMetric `json:"metrics"`
}
