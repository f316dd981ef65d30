package metrics

import (
	"testing"
	"time"
)

func TestCollectorCountsByStatusClass(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(400, 5*time.Millisecond)
	c.Record(422, 5*time.Millisecond)
	c.Record(500, 20*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"].(uint64) != 4 {
		t.Fatalf("requests = %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"].(uint64) != 1 {
		t.Fatalf("errors = %v", snap["errorsTotal"])
	}
	if snap["rejectedInputsTotal"].(uint64) != 2 {
		t.Fatalf("rejected inputs = %v", snap["rejectedInputsTotal"])
	}
	if snap["avgDurationMs"].(float64) != 10 {
		t.Fatalf("avg duration = %v", snap["avgDurationMs"])
	}
}

func TestCollectorEmptySnapshot(t *testing.T) {
	snap := New().Snapshot()
	if snap["requestsTotal"].(uint64) != 0 || snap["avgDurationMs"].(float64) != 0 {
		t.Fatalf("unexpected snapshot: %v", snap)
	}
}
