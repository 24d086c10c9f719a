package registry

import (
	"gorm.io/gorm"

	"transit_lineas/internal/models"
)

// Geometry persistence for a line: the stored sequences are always
// replaced wholesale (delete-all, reinsert) and the dense 1-based orden
// is derived here from the input position, never taken from the caller.

func replaceRoutePoints(tx *gorm.DB, lineID uint, coords []CoordInput) error {
	if err := tx.Where("linea_id = ?", lineID).Delete(&models.RoutePoint{}).Error; err != nil {
		return err
	}
	if len(coords) == 0 {
		return nil
	}
	points := make([]models.RoutePoint, len(coords))
	for i, c := range coords {
		points[i] = models.RoutePoint{
			LineID: lineID,
			Lat:    c.Lat,
			Lng:    c.Lng,
			Seq:    i + 1,
		}
	}
	return tx.Create(&points).Error
}

func replaceStops(tx *gorm.DB, lineID uint, stops []StopInput) error {
	if err := tx.Where("linea_id = ?", lineID).Delete(&models.Stop{}).Error; err != nil {
		return err
	}
	if len(stops) == 0 {
		return nil
	}
	rows := make([]models.Stop, len(stops))
	for i, s := range stops {
		rows[i] = models.Stop{
			LineID: lineID,
			Name:   optionalString(s.Name),
			Lat:    s.Lat,
			Lng:    s.Lng,
			Seq:    i + 1,
		}
	}
	return tx.Create(&rows).Error
}
