package cpuinfo

import "testing"

func TestProbePreferredBackend(t *testing.T) {
	f := Probe()
	if got := f.PreferredBackend(); got != "scalar" {
		t.Errorf("PreferredBackend() = %q, want %q", got, "scalar")
	}
}
