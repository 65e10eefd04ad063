package maprouter

import "testing"

func TestChargingOptionsFromTags(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want ChargingOptions
	}{
		{map[string]string{"car": "yes", "bicycle": "yes"}, ChargingCarBike},
		{map[string]string{"car": "yes"}, ChargingCar},
		{map[string]string{"bicycle": "yes"}, ChargingBike},
		{map[string]string{}, ChargingCarBike},
	}
	for _, c := range cases {
		if got := chargingOptionsFromTags(c.tags); got != c.want {
			t.Fatalf("chargingOptionsFromTags(%v) = %v, want %v", c.tags, got, c.want)
		}
	}
}

func TestFinalizeCSR(t *testing.T) {
	nodes := []Node{
		{ID: 0, Coordinates: NewCoordinates(0, 0)},
		{ID: 1, Coordinates: NewCoordinates(0.001, 0)},
		{ID: 2, Coordinates: NewCoordinates(0.002, 0)},
	}
	edges := []Edge{
		{SourceIndex: 0, TargetIndex: 1},
		{SourceIndex: 0, TargetIndex: 2},
		{SourceIndex: 1, TargetIndex: 0},
	}

	offsets := finalizeCSR(nodes, edges)

	if len(offsets) != len(nodes)+1 {
		t.Fatalf("offsets length = %d, want %d", len(offsets), len(nodes)+1)
	}
	want := []int{0, 2, 3, 3}
	for i, w := range want {
		if offsets[i] != w {
			t.Fatalf("offsets[%d] = %d, want %d", i, offsets[i], w)
		}
	}
	for _, e := range edges {
		if e.DistanceM == 0 {
			t.Fatalf("edge %v was not assigned a distance", e)
		}
	}

	// CSR well-formedness: every edge in edges[offsets[u]:offsets[u+1]] has
	// source_index == u.
	for u := 0; u < len(nodes); u++ {
		for _, e := range edges[offsets[u]:offsets[u+1]] {
			if e.SourceIndex != u {
				t.Fatalf("edge %v found in node %d's adjacency span", e, u)
			}
		}
	}
}

func TestResolveMaxSpeedFallsBackToDefault(t *testing.T) {
	speed := resolveMaxSpeed(map[string]string{}, Residential)
	if speed.Speed != 30 {
		t.Fatalf("got %d, want 30", speed.Speed)
	}
}

func TestResolveMaxSpeedUsesTag(t *testing.T) {
	speed := resolveMaxSpeed(map[string]string{"maxspeed": "80"}, Residential)
	if speed.Speed != 80 {
		t.Fatalf("got %d, want 80", speed.Speed)
	}
}
