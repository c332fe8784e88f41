package orchestration

import "testing"

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		workers int
		wantNil bool
	}{
		{3, false}, {1, false}, {0, true}, {-1, true},
	}
	for _, tt := range tests {
		agg := NewProgressAggregator(tt.workers)
		if (agg == nil) != tt.wantNil {
			t.Errorf("NewProgressAggregator(%d) nil = %v, want %v", tt.workers, agg == nil, tt.wantNil)
			continue
		}
		if agg != nil && agg.NumWorkers() != tt.workers {
			t.Errorf("NumWorkers() = %d, want %d", agg.NumWorkers(), tt.workers)
		}
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(2)

	ap := agg.Update(ProgressUpdate{WorkerIndex: 0, Value: 0.5})
	if ap.WorkerIndex != 0 || ap.Value != 0.5 {
		t.Errorf("got %+v", ap)
	}
	if ap.AverageProgress != 0.25 {
		t.Errorf("AverageProgress = %f, want 0.25", ap.AverageProgress)
	}
	ap = agg.Update(ProgressUpdate{WorkerIndex: 1, Value: 0.5})
	if ap.AverageProgress != 0.5 {
		t.Errorf("AverageProgress = %f, want 0.5", ap.AverageProgress)
	}
	if agg.CalculateAverage() != 0.5 {
		t.Errorf("CalculateAverage() = %f, want 0.5", agg.CalculateAverage())
	}
}

func TestProgressAggregator_GetETA(t *testing.T) {
	t.Parallel()
	if eta := NewProgressAggregator(1).GetETA(); eta != 0 {
		t.Errorf("initial ETA = %v, want 0", eta)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	ch <- ProgressUpdate{Value: 0.1}
	ch <- ProgressUpdate{Value: 0.2}
	close(ch)
	DrainChannel(ch)
	if _, ok := <-ch; ok {
		t.Error("channel not drained")
	}
}
