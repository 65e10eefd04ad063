package maprouter

import (
	"strconv"
	"strings"
)

// Highway enumerates the OSM road classes this engine recognises. Any
// `highway` tag value outside this set is silently skipped during ingest.
type Highway int

const (
	Motorway Highway = iota
	Trunk
	Primary
	Secondary
	Tertiary
	Unclassified
	Residential
	MotorwayLink
	TrunkLink
	PrimaryLink
	SecondaryLink
	TertiaryLink
	LivingStreet
	Service
	Track
	Road
	Cycleway
)

var highwayTags = map[string]Highway{
	"motorway":       Motorway,
	"trunk":          Trunk,
	"primary":        Primary,
	"secondary":      Secondary,
	"tertiary":       Tertiary,
	"unclassified":   Unclassified,
	"residential":    Residential,
	"motorway_link":  MotorwayLink,
	"trunk_link":     TrunkLink,
	"primary_link":   PrimaryLink,
	"secondary_link": SecondaryLink,
	"tertiary_link":  TertiaryLink,
	"living_street":  LivingStreet,
	"service":        Service,
	"track":          Track,
	"road":           Road,
	"cycleway":       Cycleway,
}

// HighwayFromTag resolves a `highway` tag value to a recognised class. ok is
// false for unrecognised values, which the builder tolerates by skipping the
// way.
func HighwayFromTag(tag string) (h Highway, ok bool) {
	h, ok = highwayTags[strings.ToLower(tag)]
	return h, ok
}

// Kmh is a speed limit or average speed, expressed in kilometers per hour.
type Kmh struct {
	Speed uint32
}

// NewKmh wraps a speed value.
func NewKmh(speed uint32) Kmh {
	return Kmh{Speed: speed}
}

// Time returns the whole-second travel time for distanceM meters at this
// speed, rounded to the nearest second.
func (k Kmh) Time(distanceM uint32) uint32 {
	metersPerSecond := float64(k.Speed) / 3.6
	if metersPerSecond <= 0 {
		return 0
	}
	seconds := float64(distanceM) / metersPerSecond
	return uint32(seconds + 0.5)
}

// defaultSpeedKmh is the per-highway-class default speed used when a way
// carries no (or an unparseable) maxspeed tag.
var defaultSpeedKmh = map[Highway]uint32{
	Motorway:      120,
	Trunk:         120,
	Primary:       100,
	Secondary:     100,
	Tertiary:      100,
	Unclassified:  50,
	Residential:   30,
	MotorwayLink:  60,
	TrunkLink:     60,
	PrimaryLink:   50,
	SecondaryLink: 50,
	TertiaryLink:  50,
	LivingStreet:  5,
	Service:       30,
	Track:         30,
	Road:          30,
	Cycleway:      30,
}

// DefaultSpeed returns the default speed for a highway class.
func (h Highway) DefaultSpeed() Kmh {
	return NewKmh(defaultSpeedKmh[h])
}

// ParseMaxSpeed parses an OSM `maxspeed` tag value. A bare integer is
// interpreted as km/h. The form "<n> mph" is converted to km/h (truncated).
// Any other form is unparseable and ok is false.
func ParseMaxSpeed(tag string) (k Kmh, ok bool) {
	if speed, err := strconv.ParseUint(tag, 10, 32); err == nil {
		return NewKmh(uint32(speed)), true
	}

	fields := strings.Fields(tag)
	if len(fields) != 2 || fields[1] != "mph" {
		return Kmh{}, false
	}
	mph, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Kmh{}, false
	}
	kmh := float64(mph) * 1.609344
	return NewKmh(uint32(kmh)), true
}
