package catalog

import (
	"testing"

	"github.com/tinytelemetry/secdash/internal/model"
)

func TestLayout_HasThirteenSlotsWithDatasets(t *testing.T) {
	t.Parallel()

	layout := Layout()
	if got := len(layout.Slots); got != 13 {
		t.Fatalf("slot count = %d, want 13", got)
	}

	tabs := make(map[string]bool)
	for _, tab := range layout.Tabs {
		tabs[tab.ID] = true
	}

	seen := make(map[string]bool)
	for _, slot := range layout.Slots {
		if seen[slot.CanvasID] {
			t.Errorf("duplicate canvas id %q", slot.CanvasID)
		}
		seen[slot.CanvasID] = true

		if !tabs[slot.Tab] {
			t.Errorf("slot %q references unknown tab %q", slot.ID, slot.Tab)
		}
		if _, ok := Dataset(slot.DatasetKey); !ok {
			t.Errorf("slot %q references unknown dataset %q", slot.ID, slot.DatasetKey)
		}
	}
	if !tabs[layout.RecommendationsTab] {
		t.Errorf("recommendations tab %q not declared", layout.RecommendationsTab)
	}
}

func TestDataset_SeriesLengthsMatchLabels(t *testing.T) {
	t.Parallel()

	for key := range datasets {
		ds, _ := Dataset(key)
		for _, s := range ds.Series {
			if len(s.Data) != len(ds.Labels) {
				t.Errorf("%s/%q: %d values for %d labels", key, s.Label, len(s.Data), len(ds.Labels))
			}
			if n := len(s.BackgroundColors); n != 0 && n != len(ds.Labels) {
				t.Errorf("%s: %d background colors for %d labels", key, n, len(ds.Labels))
			}
		}
	}
}

func TestDataset_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ds, ok := Dataset(EmailAttackAnalysis)
	if !ok {
		t.Fatal("email dataset missing")
	}
	ds.Labels[0] = "mutated"
	ds.Series[0].Data[0] = -1

	again, _ := Dataset(EmailAttackAnalysis)
	if again.Labels[0] != "Urgent: Password Reset" {
		t.Fatalf("label mutated through copy: %q", again.Labels[0])
	}
	if again.Series[0].Data[0] != 28 {
		t.Fatalf("value mutated through copy: %v", again.Series[0].Data[0])
	}
	if again.Name != EmailAttackAnalysis {
		t.Fatalf("name = %q, want %q", again.Name, EmailAttackAnalysis)
	}
}

func TestMultiSeriesShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		series int
		points int
	}{
		{WeeklyAlertVolume, 3, 8},
		{AlertSeverityDistribution, 4, 7},
		{AlertSeverityTrends, 4, 4},
	}

	for _, tt := range tests {
		ds, _ := Dataset(tt.key)
		if len(ds.Series) != tt.series {
			t.Errorf("%s: series = %d, want %d", tt.key, len(ds.Series), tt.series)
			continue
		}
		for _, s := range ds.Series {
			if len(s.Data) != tt.points {
				t.Errorf("%s/%s: points = %d, want %d", tt.key, s.Label, len(s.Data), tt.points)
			}
			if s.BorderColor == "" {
				t.Errorf("%s/%s: missing border color", tt.key, s.Label)
			}
		}
	}
}

func TestRecommendations_Order(t *testing.T) {
	t.Parallel()

	recs := Recommendations()
	want := []string{
		"Implement Multi-Factor Authentication",
		"Enhance Endpoint Protection",
		"Improve Security Awareness Training",
	}
	if len(recs) != len(want) {
		t.Fatalf("recommendations = %d, want %d", len(recs), len(want))
	}
	for i, title := range want {
		if recs[i].Title != title {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i].Title, title)
		}
	}
}

func TestLayout_EmailSlotCapped(t *testing.T) {
	t.Parallel()

	for _, slot := range Layout().Slots {
		if slot.DatasetKey == EmailAttackAnalysis {
			if slot.LabelCap != EmailLabelCap || slot.Kind != model.KindHorizontalBar {
				t.Fatalf("email slot = %+v", slot)
			}
			return
		}
	}
	t.Fatal("email slot not declared")
}
