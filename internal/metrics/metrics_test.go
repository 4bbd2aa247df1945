package metrics

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorObserveMultiply(t *testing.T) {
	c := NewCollector(nil)
	c.ObserveMultiply("schoolbook")
	c.ObserveMultiply("transform")

	if got := testutil.ToFloat64(c.multiplyTotal.WithLabelValues("schoolbook")); got != 1 {
		t.Errorf("schoolbook count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.multiplyTotal.WithLabelValues("transform")); got != 1 {
		t.Errorf("transform count = %v, want 1", got)
	}
}

func TestCollectorObserveDivide(t *testing.T) {
	c := NewCollector(nil)
	c.ObserveDivide("newton")
	c.ObserveDivide("newton")

	if got := testutil.ToFloat64(c.divideTotal.WithLabelValues("newton")); got != 2 {
		t.Errorf("newton count = %v, want 2", got)
	}
}

func TestCollectorNilIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveMultiply("schoolbook")
	c.ObserveDivide("newton")
	c.ObserveNewtonCorrections(1)
}

func TestCollectorRegistersAgainstRegisterer(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := NewMockRegisterer(ctrl)
	reg.EXPECT().MustRegister(gomock.Any(), gomock.Any(), gomock.Any())
	NewCollector(reg)
}
