package handlers

import (
	"net/http"

	"forest-tev/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListComponents handles GET /api/v1/components
func ListComponents(c *gin.Context) {
	components := []models.ComponentInfo{
		{
			Name:        "timber",
			Description: "Net timber revenue: stumpage price times merchantable volume, less regeneration cost.",
			Units:       "$",
		},
		{
			Name:        "carbon_credits",
			Description: "Carbon credit value of the post-treatment biomass change. Negative when treatment reduces stored carbon.",
			Units:       "$",
		},
		{
			Name:        "ecosystem_services",
			Description: "Water quality and endangered species values, discounted over the lease horizon by default.",
			Units:       "$",
		},
		{
			Name:        "land_value",
			Description: "Net present value of the hunting lease revenue stream.",
			Units:       "$",
		},
		{
			Name:        "total_tev",
			Description: "Sum of all four components per trial.",
			Units:       "$",
		},
	}

	c.JSON(http.StatusOK, gin.H{"components": components})
}
