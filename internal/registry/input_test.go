package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() LineInput {
	return LineInput{
		Syndicate: "Villa Victoria",
		Name:      "Roja",
		Route:     []CoordInput{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}},
		Stops:     []StopInput{{Lat: 0, Lng: 0, Name: "Inicio"}},
	}
}

func TestValidateInputDefaultsFrequency(t *testing.T) {
	r := New(nil)
	in := validInput()
	require.NoError(t, r.validateInput(&in))
	assert.Equal(t, defaultFrequencyMin, in.FrequencyMin)
}

func TestValidateInputRequiredFields(t *testing.T) {
	r := New(nil)

	in := validInput()
	in.Syndicate = "V" // below the 2-char minimum
	err := r.validateInput(&in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)

	in = validInput()
	in.Name = ""
	assert.Error(t, r.validateInput(&in))

	in = validInput()
	in.Route = nil
	assert.Error(t, r.validateInput(&in))
}

func TestValidateInputCoordinateRanges(t *testing.T) {
	r := New(nil)

	in := validInput()
	in.Route = append(in.Route, CoordInput{Lat: 91, Lng: 0})
	assert.Error(t, r.validateInput(&in))

	in = validInput()
	in.Stops = []StopInput{{Lat: 0, Lng: -181}}
	assert.Error(t, r.validateInput(&in))
}

func TestValidateInputFrequencyBounds(t *testing.T) {
	r := New(nil)

	in := validInput()
	in.FrequencyMin = 121
	err := r.validateInput(&in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "frecuencia_min")

	in = validInput()
	in.FrequencyMin = -1
	assert.Error(t, r.validateInput(&in))

	in = validInput()
	in.FrequencyMin = 120
	assert.NoError(t, r.validateInput(&in))
}

func TestValidateInputEmptyStopsAllowed(t *testing.T) {
	r := New(nil)
	in := validInput()
	in.Stops = nil
	assert.NoError(t, r.validateInput(&in))
}
