package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Boards evaluated, including the root's successors
	Cutoffs   int64 // Sibling scans abandoned by alpha-beta
	Value     float64
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCutoff()
	Complete(value float64) SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     int64
	cutoffs   int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.cutoffs = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) Complete(value float64) SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Cutoffs:   m.cutoffs,
		Value:     value,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                               {}
func (m *noMetricsCollector) AddNode()                             {}
func (m *noMetricsCollector) AddCutoff()                           {}
func (m *noMetricsCollector) Complete(value float64) SearchMetrics { return SearchMetrics{Value: value} }
