package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gracechapel/church-management-backend/internal/apperror"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

func writeAttachment(c *gin.Context, data []byte, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// ExportDonations streams successful donations in the requested window.
// Defaults to the trailing year when no range is given.
func (h *Handler) ExportDonations(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	to := time.Now()
	from := to.AddDate(-1, 0, 0)
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, use YYYY-MM-DD"})
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, use YYYY-MM-DD"})
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	data, filename, contentType, err := h.service.ExportDonations(format, from, to)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	writeAttachment(c, data, filename, contentType)
}

func (h *Handler) ExportMembers(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)
	data, filename, contentType, err := h.service.ExportMembers(format)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	writeAttachment(c, data, filename, contentType)
}
