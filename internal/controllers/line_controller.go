package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transit_lineas/internal/registry"
)

// LineController exposes the registry write path and the line/syndicate
// reads over HTTP. The registry handle is injected at construction.
type LineController struct {
	Registry *registry.Registry
}

func NewLineController(reg *registry.Registry) *LineController {
	return &LineController{Registry: reg}
}

// Create registers a new line with its geometry. The role check already
// happened in the middleware chain; only the actor name travels further.
func (lc *LineController) Create(c *gin.Context) {
	var input registry.LineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateLine: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	actor := c.GetString("username")
	id, err := lc.Registry.CreateLine(c.Request.Context(), input, actor)
	if err != nil {
		lc.writeError(c, "CreateLine", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// Update replaces a line's fields and full geometry.
func (lc *LineController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line id"})
		return
	}

	var input registry.LineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateLine: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	actor := c.GetString("username")
	if err := lc.Registry.UpdateLine(c.Request.Context(), uint(id), input, actor); err != nil {
		lc.writeError(c, "UpdateLine", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete removes a line; the audit trail keeps its history.
func (lc *LineController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line id"})
		return
	}

	actor := c.GetString("username")
	if err := lc.Registry.DeleteLine(c.Request.Context(), uint(id), actor); err != nil {
		logrus.WithError(err).Error("DeleteLine: write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Get resolves a line by numeric id or string key.
func (lc *LineController) Get(c *gin.Context) {
	view, err := lc.Registry.GetLine(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, registry.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No encontrada"})
			return
		}
		logrus.WithError(err).Error("GetLine: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// List returns every line with its geometry.
func (lc *LineController) List(c *gin.Context) {
	views, err := lc.Registry.ListLines(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListLines: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

// ListSyndicates returns all syndicates alphabetically.
func (lc *LineController) ListSyndicates(c *gin.Context) {
	syndicates, err := lc.Registry.ListSyndicates(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("ListSyndicates: read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": syndicates})
}

// writeError maps registry write failures onto the HTTP contract:
// validation and rolled-back transactions surface as 400, a missing line
// as 404.
func (lc *LineController) writeError(c *gin.Context, op string, err error) {
	if errors.Is(err, registry.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No encontrada"})
		return
	}
	var verr *registry.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		return
	}
	logrus.WithError(err).Error(op + ": write failed")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
