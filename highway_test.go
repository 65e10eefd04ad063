package maprouter

import "testing"

func TestKmhTime(t *testing.T) {
	cases := []struct {
		speed    uint32
		distance uint32
		want     uint32
	}{
		{50, 200, 14},
		{20, 200, 36},
		{5, 200, 144},
	}
	for _, c := range cases {
		got := NewKmh(c.speed).Time(c.distance)
		if got != c.want {
			t.Fatalf("Kmh(%d).Time(%d) = %d, want %d", c.speed, c.distance, got, c.want)
		}
	}
}

func TestKmhTimeZeroSpeed(t *testing.T) {
	if got := NewKmh(0).Time(100); got != 0 {
		t.Fatalf("Kmh(0).Time(100) = %d, want 0", got)
	}
}

func TestHighwayFromTag(t *testing.T) {
	if h, ok := HighwayFromTag("Residential"); !ok || h != Residential {
		t.Fatalf("HighwayFromTag(Residential) = %v, %v", h, ok)
	}
	if _, ok := HighwayFromTag("footway"); ok {
		t.Fatalf("HighwayFromTag(footway) should not resolve")
	}
}

func TestDefaultSpeedTable(t *testing.T) {
	cases := map[Highway]uint32{
		Motorway:     120,
		Trunk:        120,
		Primary:      100,
		Secondary:    100,
		Tertiary:     100,
		Unclassified: 50,
		Residential:  30,
		MotorwayLink: 60,
		TrunkLink:    60,
		PrimaryLink:  50,
		LivingStreet: 5,
		Service:      30,
		Track:        30,
		Cycleway:     30,
	}
	for h, want := range cases {
		if got := h.DefaultSpeed().Speed; got != want {
			t.Fatalf("highway %d default speed = %d, want %d", h, got, want)
		}
	}
}

func TestParseMaxSpeedBare(t *testing.T) {
	k, ok := ParseMaxSpeed("100")
	if !ok || k.Speed != 100 {
		t.Fatalf("ParseMaxSpeed(100) = %v, %v", k, ok)
	}
}

func TestParseMaxSpeedMph(t *testing.T) {
	// 60 mph * 1.609344 = 96.56064, truncated to 96.
	k, ok := ParseMaxSpeed("60 mph")
	if !ok || k.Speed != 96 {
		t.Fatalf("ParseMaxSpeed(60 mph) = %v, %v, want 96", k, ok)
	}
}

func TestParseMaxSpeedUnparseable(t *testing.T) {
	if _, ok := ParseMaxSpeed("walk"); ok {
		t.Fatalf("ParseMaxSpeed(walk) should not resolve")
	}
}
