package registry

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Frequency policy bounds, matching the schema contract of the original
// service: 1..120 minutes, defaulting to 10 when omitted.
const (
	defaultFrequencyMin = 10
	minFrequencyMin     = 1
	maxFrequencyMin     = 120
)

// CoordInput is one route polyline vertex, in submission order.
type CoordInput struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// StopInput is one boarding point, in submission order. The name may be
// empty.
type StopInput struct {
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
	Name string  `json:"nombre"`
}

// LineInput is the write contract for CreateLine and UpdateLine. The
// wire keys keep the Spanish vocabulary of the existing clients.
type LineInput struct {
	Syndicate    string       `json:"sindicato" validate:"required,min=2"`
	Name         string       `json:"nombre" validate:"required,min=1"`
	Key          string       `json:"clave"`
	Number       *int         `json:"numero"`
	FrequencyMin int          `json:"frecuencia_min"`
	Route        []CoordInput `json:"recorrido" validate:"required,min=1,dive"`
	Stops        []StopInput  `json:"paradas" validate:"dive"`
}

// normalize applies the contract defaults before validation.
func (in *LineInput) normalize() {
	in.Syndicate = strings.TrimSpace(in.Syndicate)
	if in.FrequencyMin == 0 {
		in.FrequencyMin = defaultFrequencyMin
	}
}

// validateInput normalizes and checks a LineInput against the schema
// contract. The returned error enumerates the failing fields.
func (r *Registry) validateInput(in *LineInput) error {
	in.normalize()
	if in.FrequencyMin < minFrequencyMin || in.FrequencyMin > maxFrequencyMin {
		return &ValidationError{Fields: []string{"frecuencia_min"}}
	}
	if err := r.validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace())
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidationError reports which input fields failed the contract.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}
