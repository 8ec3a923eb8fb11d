package aggregate_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/tally/internal/aggregate"
	"github.com/garrettladley/tally/internal/client/tally"
)

const epsilon = 1e-9

func TestOrderCounters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []tally.Counter
		want  []string
	}{
		{
			name:  "ascending by value",
			input: []tally.Counter{{ID: 1, Label: "A", Value: 5}, {ID: 2, Label: "B", Value: 2}},
			want:  []string{"B", "A"},
		},
		{
			name: "ties keep snapshot order",
			input: []tally.Counter{
				{ID: 1, Label: "A", Value: 1},
				{ID: 2, Label: "B", Value: 0},
				{ID: 3, Label: "C", Value: 1},
				{ID: 4, Label: "D", Value: 0},
			},
			want: []string{"B", "D", "A", "C"},
		},
		{
			name:  "negative values first",
			input: []tally.Counter{{ID: 1, Label: "A", Value: 0}, {ID: 2, Label: "B", Value: -3}},
			want:  []string{"B", "A"},
		},
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := aggregate.OrderCounters(tt.input)
			labels := make([]string, 0, len(got))
			for _, c := range got {
				labels = append(labels, c.Label)
			}
			if diff := cmp.Diff(tt.want, labels); diff != "" {
				t.Errorf("OrderCounters() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderCountersDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []tally.Counter{{ID: 1, Label: "A", Value: 5}, {ID: 2, Label: "B", Value: 2}}
	_ = aggregate.OrderCounters(input)
	if input[0].Label != "A" {
		t.Errorf("OrderCounters() reordered its input: %v", input)
	}
}

func TestProjectSpans(t *testing.T) {
	t.Parallel()

	causes := []tally.Cause{
		{Cause: "X", Value: 1, Color: "#ff0000"},
		{Cause: "Y", Value: 3, Color: "#00ff00"},
	}
	got := aggregate.Project(causes, aggregate.DefaultGeometry(10))

	type span struct {
		Cause      string
		StartAngle float64
		EndAngle   float64
		Percent    int
	}
	want := []span{
		{Cause: "X", StartAngle: 270, EndAngle: 360, Percent: 25},
		{Cause: "Y", StartAngle: 360, EndAngle: 630, Percent: 75},
	}

	gotSpans := make([]span, 0, len(got))
	for _, s := range got {
		gotSpans = append(gotSpans, span{s.Cause.Cause, s.StartAngle, s.EndAngle, s.Percent()})
	}
	if diff := cmp.Diff(want, gotSpans, cmpopts.EquateApprox(0, epsilon)); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectSpansSumToFullCircle(t *testing.T) {
	t.Parallel()

	causes := []tally.Cause{
		{Cause: "A", Value: 7}, {Cause: "B", Value: 11}, {Cause: "C", Value: 0},
		{Cause: "D", Value: 13}, {Cause: "E", Value: -4},
	}
	got := aggregate.Project(causes, aggregate.DefaultGeometry(10))

	var sum float64
	for i, s := range got {
		if s.Span() < 0 {
			t.Errorf("slice %d has negative span %v", i, s.Span())
		}
		if i > 0 && s.StartAngle != got[i-1].EndAngle {
			t.Errorf("slice %d starts at %v, previous ends at %v", i, s.StartAngle, got[i-1].EndAngle)
		}
		sum += s.Span()
	}
	if math.Abs(sum-360) > epsilon {
		t.Errorf("spans sum to %v, want 360", sum)
	}
	if !got[2].Empty() || !got[4].Empty() {
		t.Errorf("zero and negative causes must be empty slices")
	}
}

func TestProjectKeepsCollectionOrder(t *testing.T) {
	t.Parallel()

	causes := []tally.Cause{{Cause: "B", Value: 1}, {Cause: "A", Value: 9}}
	got := aggregate.Project(causes, aggregate.DefaultGeometry(10))

	if got[0].Cause.Cause != "B" || got[1].Cause.Cause != "A" {
		t.Fatalf("Project() order = [%s %s], want [B A]", got[0].Cause.Cause, got[1].Cause.Cause)
	}
	if got[0].StartAngle != aggregate.DefaultStartAngle {
		t.Errorf("first slice starts at %v, want %v", got[0].StartAngle, aggregate.DefaultStartAngle)
	}
}

func TestProjectZeroTotal(t *testing.T) {
	t.Parallel()

	g := aggregate.Geometry{CenterX: 5, CenterY: 5, OuterRadius: 4, StartAngle: aggregate.DefaultStartAngle}
	causes := []tally.Cause{{Cause: "A"}, {Cause: "B", Value: -2}}
	got := aggregate.Project(causes, g)

	if len(got) != len(causes) {
		t.Fatalf("Project() returned %d slices, want %d so the legend keeps every cause", len(got), len(causes))
	}
	for _, s := range got {
		if !s.Empty() || s.Share != 0 {
			t.Errorf("slice %q = %+v, want empty", s.Cause.Cause, s)
		}
		if s.StartAngle != g.StartAngle {
			t.Errorf("slice %q starts at %v, want reference angle %v", s.Cause.Cause, s.StartAngle, g.StartAngle)
		}
		// 12 o'clock at 60% of the radius.
		if math.Abs(s.LabelX-5) > epsilon || math.Abs(s.LabelY-(5-2.4)) > epsilon {
			t.Errorf("slice %q label = (%v, %v), want (5, 2.6)", s.Cause.Cause, s.LabelX, s.LabelY)
		}
	}

	if got := aggregate.Project(nil, g); len(got) != 0 {
		t.Errorf("Project(nil) = %v, want no slices", got)
	}
}

func TestProjectLabelPosition(t *testing.T) {
	t.Parallel()

	g := aggregate.Geometry{CenterX: 0, CenterY: 0, InnerRadius: 10, OuterRadius: 20, StartAngle: 0}
	got := aggregate.Project([]tally.Cause{{Cause: "A", Value: 1}, {Cause: "B", Value: 1}}, g)

	tests := []struct {
		name  string
		slice aggregate.Slice
		wantX float64
		wantY float64
	}{
		// mid angle 90° is 6 o'clock; radius 10 + 10*0.6 = 16
		{name: "first half", slice: got[0], wantX: 0, wantY: 16},
		{name: "second half", slice: got[1], wantX: 0, wantY: -16},
	}

	for _, tt := range tests {
		if math.Abs(tt.slice.LabelX-tt.wantX) > epsilon || math.Abs(tt.slice.LabelY-tt.wantY) > epsilon {
			t.Errorf("%s: label = (%v, %v), want (%v, %v)", tt.name, tt.slice.LabelX, tt.slice.LabelY, tt.wantX, tt.wantY)
		}
	}
}

func TestTotal(t *testing.T) {
	t.Parallel()

	causes := []tally.Cause{{Value: 2}, {Value: -5}, {Value: 3}}
	if got := aggregate.Total(causes); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
}
