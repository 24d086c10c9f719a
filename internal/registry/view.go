package registry

import (
	"time"

	"transit_lineas/internal/models"
)

// LineView is the read model returned by every query: the line row, its
// resolved syndicate name and its geometry ordered by orden.
type LineView struct {
	ID           uint       `json:"id"`
	Syndicate    string     `json:"sindicato"`
	SyndicateID  uint       `json:"sindicato_id"`
	Name         string     `json:"nombre"`
	Key          *string    `json:"clave"`
	Number       *int       `json:"numero"`
	FrequencyMin int        `json:"frecuencia_min"`
	Status       string     `json:"estado"`
	CreatedBy    string     `json:"usuario_creacion"`
	CreatedAt    time.Time  `json:"fecha_creacion"`
	ModifiedBy   *string    `json:"usuario_modificacion,omitempty"`
	ModifiedAt   *time.Time `json:"fecha_modificacion,omitempty"`

	Route []models.RoutePoint `json:"recorrido"`
	Stops []models.Stop       `json:"paradas"`
}

func toLineView(line models.Line) LineView {
	v := LineView{
		ID:           line.ID,
		Syndicate:    line.Syndicate.Name,
		SyndicateID:  line.SyndicateID,
		Name:         line.Name,
		Key:          line.Key,
		Number:       line.Number,
		FrequencyMin: line.FrequencyMin,
		Status:       line.Status,
		CreatedBy:    line.CreatedBy,
		CreatedAt:    line.CreatedAt,
		ModifiedBy:   line.ModifiedBy,
		ModifiedAt:   line.ModifiedAt,
		Route:        line.RoutePoints,
		Stops:        line.Stops,
	}
	if v.Route == nil {
		v.Route = []models.RoutePoint{}
	}
	if v.Stops == nil {
		v.Stops = []models.Stop{}
	}
	return v
}
