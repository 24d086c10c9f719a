package registry

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"transit_lineas/internal/metrics"
	"transit_lineas/internal/models"
)

// etaFloorMin guards the modulo against degenerate configured
// frequencies (zero or negative).
const etaFloorMin = 2

// EstimateETA returns the minutes until the next departure of a line,
// assuming a fixed cadence of frecuencia_min aligned to the hour. There
// is no live vehicle data behind this: the stop a caller is waiting at
// does not change the estimate. The instant is passed in so the result
// is reproducible.
func (r *Registry) EstimateETA(ctx context.Context, lineID uint, at time.Time) (int, error) {
	var line models.Line
	err := r.db.WithContext(ctx).Select("id", "frecuencia_min").First(&line, lineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrLineNotFound
		}
		return 0, err
	}

	metrics.ETALookups.Inc()
	return etaMinutes(line.FrequencyMin, at), nil
}

func etaMinutes(frequencyMin int, at time.Time) int {
	freq := frequencyMin
	if freq < etaFloorMin {
		freq = etaFloorMin
	}
	return freq - at.Minute()%freq
}
