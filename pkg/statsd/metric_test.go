package statsd

import (
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
)

type published struct {
	name string
	tags []string
	rate float64
}

func newTestMetric(influx bool, sink *[]published, err error) *Metric {
	return &Metric{
		logger:        log.NewNoop(),
		name:          "checkout",
		rate:          1,
		withInfluxTag: influx,
		publishFunc: func(name string, tags []string, rate float64) error {
			*sink = append(*sink, published{name: name, tags: tags, rate: rate})
			return err
		},
	}
}

func TestMetricPublish(t *testing.T) {
	t.Run("influx format encodes tags in the name", func(t *testing.T) {
		var sink []published
		newTestMetric(true, &sink, nil).Tag("outcome", "conflict").Success().Publish()

		assert.Equal(t, []published{{name: "checkout,outcome=conflict,success=true", rate: 1}}, sink)
	})

	t.Run("datadog format sends tags separately", func(t *testing.T) {
		var sink []published
		newTestMetric(false, &sink, nil).Tag("outcome", "committed").Failure(errors.New("boom")).Publish()

		assert.Equal(t, []published{{
			name: "checkout",
			tags: []string{"outcome:committed", "success:false"},
			rate: 1,
		}}, sink)
	})

	t.Run("publish errors are not fatal", func(t *testing.T) {
		var sink []published
		newTestMetric(true, &sink, errors.New("unreachable")).Publish()

		assert.Len(t, sink, 1)
	})

	t.Run("nil metrics are ignored", func(t *testing.T) {
		var m *Metric
		assert.NotPanics(t, func() { m.Tag("a", "b").Success().Publish() })
	})
}

func TestReporter(t *testing.T) {
	t.Run("disabled reporter discards metrics", func(t *testing.T) {
		r, err := Init(log.NewNoop(), Config{Enabled: false, SamplingRate: 1})
		assert.NoError(t, err)

		assert.NotPanics(t, func() {
			r.Incr("checkout").Success().Publish()
			r.Gauge("cart_size", 2).Publish()
		})
		assert.NoError(t, r.Close())
	})

	t.Run("nil reporter discards metrics", func(t *testing.T) {
		var r *Reporter
		assert.NotPanics(t, func() { r.Incr("checkout").Publish() })
		assert.NoError(t, r.Close())
	})
}
