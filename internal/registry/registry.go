// Package registry implements the transactional line-registry write path
// and the read-side query engine (proximity, GeoJSON export, ETA) over it.
// It is transport-agnostic: callers hand it an already-authenticated actor
// name, authorization happens before any of these methods run.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"transit_lineas/internal/metrics"
	"transit_lineas/internal/models"
)

// ErrLineNotFound is returned when a referenced line does not exist.
var ErrLineNotFound = errors.New("line not found")

// Registry owns the line write path and the query loaders. The database
// handle is injected once at construction; every write acquires one
// transaction on it and releases it on every exit path.
type Registry struct {
	db       *gorm.DB
	validate *validator.Validate
}

func New(db *gorm.DB) *Registry {
	return &Registry{
		db:       db,
		validate: validator.New(),
	}
}

// CreateLine validates the input, resolves (or lazily creates) the owning
// syndicate, inserts the line with its ordered geometry and appends a
// CREAR audit record. Everything commits as a single atomic unit.
func (r *Registry) CreateLine(ctx context.Context, input LineInput, actor string) (uint, error) {
	if err := r.validateInput(&input); err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	syn, err := lookupOrCreateSyndicate(tx, input.Syndicate)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	line := models.Line{
		SyndicateID:  syn.ID,
		Name:         input.Name,
		Key:          optionalString(input.Key),
		Number:       input.Number,
		FrequencyMin: input.FrequencyMin,
		Status:       models.LineStatusActive,
		CreatedBy:    actor,
	}
	if err := tx.Create(&line).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := replaceRoutePoints(tx, line.ID, input.Route); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := replaceStops(tx, line.ID, input.Stops); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := appendAudit(tx, line.ID, models.AuditActionCreate, &input, actor); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	metrics.LineWrites.WithLabelValues("create").Inc()
	logrus.WithFields(logrus.Fields{"linea_id": line.ID, "usuario": actor}).Info("linea creada")
	return line.ID, nil
}

// UpdateLine revalidates the full input and replaces the line's mutable
// fields and its entire geometry, appending a MODIFICAR audit record.
// Fails with ErrLineNotFound when the id does not exist; a failure at any
// step rolls back the whole write.
func (r *Registry) UpdateLine(ctx context.Context, id uint, input LineInput, actor string) error {
	if err := r.validateInput(&input); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// The row lock taken here serializes concurrent updates to one line,
	// so two writers can never interleave their geometry replacement.
	var line models.Line
	if err := tx.Clauses(forUpdate()).First(&line, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return err
	}

	syn, err := lookupOrCreateSyndicate(tx, input.Syndicate)
	if err != nil {
		tx.Rollback()
		return err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"sindicato_id":         syn.ID,
		"nombre":               input.Name,
		"clave":                optionalString(input.Key),
		"numero":               input.Number,
		"frecuencia_min":       input.FrequencyMin,
		"usuario_modificacion": actor,
		"fecha_modificacion":   now,
	}
	if err := tx.Model(&models.Line{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := replaceRoutePoints(tx, id, input.Route); err != nil {
		tx.Rollback()
		return err
	}
	if err := replaceStops(tx, id, input.Stops); err != nil {
		tx.Rollback()
		return err
	}
	if err := appendAudit(tx, id, models.AuditActionUpdate, &input, actor); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	metrics.LineWrites.WithLabelValues("update").Inc()
	logrus.WithFields(logrus.Fields{"linea_id": id, "usuario": actor}).Info("linea modificada")
	return nil
}

// DeleteLine removes a line and its geometry and appends an ELIMINAR
// audit record referencing the now-gone id. The audit append rides the
// same transaction: a committed delete can never lose its record.
func (r *Registry) DeleteLine(ctx context.Context, id uint, actor string) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("linea_id = ?", id).Delete(&models.RoutePoint{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("linea_id = ?", id).Delete(&models.Stop{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Line{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := appendAudit(tx, id, models.AuditActionDelete, nil, actor); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	metrics.LineWrites.WithLabelValues("delete").Inc()
	logrus.WithFields(logrus.Fields{"linea_id": id, "usuario": actor}).Info("linea eliminada")
	return nil
}

// GetLine resolves a line by numeric id or, failing that, by its opaque
// key. A key composed only of digits always resolves as an id, so such
// keys are unreachable by key lookup; callers depend on ids winning.
func (r *Registry) GetLine(ctx context.Context, key string) (*LineView, error) {
	q := r.lineQuery(ctx)

	var line models.Line
	var err error
	if id, perr := strconv.ParseUint(key, 10, 64); perr == nil {
		err = q.First(&line, uint(id)).Error
	} else {
		err = q.Where("clave = ?", key).First(&line).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, err
	}

	v := toLineView(line)
	return &v, nil
}

// ListLines returns every line with its full geometry attached, ordered
// by id so repeated reads of one snapshot are deterministic.
func (r *Registry) ListLines(ctx context.Context) ([]LineView, error) {
	var lines []models.Line
	if err := r.lineQuery(ctx).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	views := make([]LineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, toLineView(l))
	}
	return views, nil
}

// ListSyndicates returns all syndicates alphabetically by name.
func (r *Registry) ListSyndicates(ctx context.Context) ([]models.Syndicate, error) {
	var syndicates []models.Syndicate
	if err := r.db.WithContext(ctx).Order("nombre").Find(&syndicates).Error; err != nil {
		return nil, err
	}
	return syndicates, nil
}

// lineQuery preloads the ordered geometry and the owning syndicate.
func (r *Registry) lineQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Syndicate").
		Preload("RoutePoints", func(db *gorm.DB) *gorm.DB { return db.Order("orden") }).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("orden") })
}

// lookupOrCreateSyndicate resolves a syndicate by name inside the
// caller's transaction, creating it on first reference. ON CONFLICT DO
// NOTHING absorbs the unique-index race with a concurrent creator
// without aborting the surrounding transaction.
func lookupOrCreateSyndicate(tx *gorm.DB, name string) (*models.Syndicate, error) {
	syn := models.Syndicate{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&syn).Error; err != nil {
		return nil, err
	}
	if syn.ID != 0 {
		return &syn, nil
	}
	// Row already existed, the insert was a no-op.
	if err := tx.Where("nombre = ?", name).First(&syn).Error; err != nil {
		return nil, err
	}
	return &syn, nil
}

// appendAudit writes one audit row inside the caller's transaction. The
// payload is the full validated input; DELETE records carry none.
func appendAudit(tx *gorm.DB, lineID uint, action string, input *LineInput, actor string) error {
	payload := ""
	if input != nil {
		data, err := json.Marshal(input)
		if err != nil {
			return err
		}
		payload = string(data)
	}
	rec := models.AuditRecord{
		LineID:  lineID,
		Action:  action,
		Payload: payload,
		Actor:   actor,
	}
	return tx.Create(&rec).Error
}

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
