package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/guimashan/platfrom-sub000/internal/db"
)

var (
	matchOutcomeDesc = prometheus.NewDesc(
		"guimashan_keyword_matches_total",
		"Total keyword match count by outcome",
		[]string{"keyword", "outcome"},
		nil,
	)
)

// MatchCollector is a custom Prometheus collector that reads match outcome
// counts from the database on each scrape.
type MatchCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *MatchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- matchOutcomeDesc
}

// Collect queries the database for all match outcomes and emits them as counters.
func (c *MatchCollector) Collect(ch chan<- prometheus.Metric) {
	outcomes, err := c.db.GetAllMatchOutcomes(context.Background())
	if err != nil {
		slog.Error("failed to collect match outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			matchOutcomeDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Keyword,
			o.Outcome,
		)
	}
}

// Recorder provides async match outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&MatchCollector{db: database})
	})
}

// RecordMatch asynchronously records a keyword match outcome. The webhook
// path never waits on the write.
func RecordMatch(keyword, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementMatchOutcome(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record match outcome", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}
