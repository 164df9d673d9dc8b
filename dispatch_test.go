package intgemm

import (
	"testing"

	"github.com/ajroetker/intgemm/cpuid"
)

func TestRequireCPUSatisfiedByFloor(t *testing.T) {
	if err := RequireCPU(cpuid.SSE2); err != nil {
		t.Fatalf("RequireCPU(SSE2) = %v, want nil (every amd64 process clears the SSE2 floor)", err)
	}
}

func TestRequireCPUFailsAboveDetected(t *testing.T) {
	err := RequireCPU(cpuid.Tag(255))
	if _, ok := err.(*UnsupportedCpuError); !ok {
		t.Fatalf("RequireCPU(255) = %v, want *UnsupportedCpuError", err)
	}
}

func TestTileShapeTracksActiveTagNotRawProbe(t *testing.T) {
	shape := tileShape8(ActiveTag())
	if got := TileShape8(); got != shape {
		t.Errorf("TileShape8() = %+v, want %+v (must key off ActiveTag, not AvailableCPU)", got, shape)
	}
}
