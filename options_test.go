package maprouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportContains(t *testing.T) {
	assert.True(t, All.Contains(Car))
	assert.True(t, All.Contains(Bike))
	assert.True(t, CarBike.Contains(Car))
	assert.True(t, CarBike.Contains(Bike))
	assert.False(t, Car.Contains(Bike))
	assert.True(t, Car.Contains(Car))
}

func TestParseTransport(t *testing.T) {
	cases := map[string]Transport{
		"car":      Car,
		"bike":     Bike,
		"all":      All,
		"car_bike": CarBike,
		"carbike":  CarBike,
	}
	for s, want := range cases {
		got, ok := ParseTransport(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	_, ok := ParseTransport("moped")
	assert.False(t, ok)
}

func TestTransportFromHighway(t *testing.T) {
	assert.Equal(t, All, transportFromHighway(Residential))
	assert.Equal(t, CarBike, transportFromHighway(Secondary))
	assert.Equal(t, Car, transportFromHighway(Motorway))
	assert.Equal(t, Bike, transportFromHighway(Cycleway))
}

func TestChargingOptionsContains(t *testing.T) {
	assert.True(t, ChargingCarBike.Contains(ChargingCar))
	assert.False(t, ChargingCar.Contains(ChargingBike))
}

func TestChargingOptionsFrom(t *testing.T) {
	assert.Equal(t, ChargingCar, ChargingOptionsFrom(Car))
	assert.Equal(t, ChargingBike, ChargingOptionsFrom(Bike))
	assert.Equal(t, ChargingCarBike, ChargingOptionsFrom(CarBike))
	assert.Equal(t, ChargingNone, ChargingOptionsFrom(All))
}
