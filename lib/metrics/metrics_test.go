package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObjectCounters(t *testing.T) {
	created := testutil.ToFloat64(ObjectsCreated.WithLabelValues("test_kind"))
	released := testutil.ToFloat64(ObjectsReleased.WithLabelValues("test_kind"))

	ObjectCreated("test_kind")
	ObjectCreated("test_kind")
	ObjectReleased("test_kind")

	assert.Equal(t, created+2, testutil.ToFloat64(ObjectsCreated.WithLabelValues("test_kind")))
	assert.Equal(t, released+1, testutil.ToFloat64(ObjectsReleased.WithLabelValues("test_kind")))
}
