package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"forest-tev/internal/api/models"
	"forest-tev/internal/data"

	"github.com/gin-gonic/gin"
)

// ListZones handles GET /api/v1/zones. Zones come from the static zone
// file when present; otherwise the builtin acreage table serves as the
// catalog.
func ListZones(c *gin.Context) {
	filePath := data.GetDefaultZonesPath()

	zoneFile, err := data.LoadZones(filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "ZONES_LOAD_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		zoneFile = &data.ZoneFile{Zones: data.BuiltinAcreage()}
	}

	zones := make([]models.ZoneInfo, len(zoneFile.Zones))
	for i, z := range zoneFile.Zones {
		zones[i] = models.ZoneInfo{
			Zone:  z.Case,
			Acres: z.Acres,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":      zones,
		"updated_at": zoneFile.UpdatedAt,
		"count":      len(zones),
	})
}
