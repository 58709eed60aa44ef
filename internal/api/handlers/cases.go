package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"forest-tev/internal/api/models"
	"forest-tev/internal/config"
	"forest-tev/internal/data"

	"github.com/gin-gonic/gin"
)

// CasesHandler handles case catalog requests
type CasesHandler struct {
	casesDir string
}

// NewCasesHandler creates a new cases handler
func NewCasesHandler() *CasesHandler {
	dir := os.Getenv("CASES_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "cases")
		} else {
			dir = "./examples/cases"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	return &CasesHandler{casesDir: dir}
}

// ListCases handles GET /api/v1/cases. The catalog merges builtin presets
// with any case files found in the cases directory; file entries shadow
// builtins of the same name.
func (h *CasesHandler) ListCases(c *gin.Context) {
	byID := map[string]models.CaseInfo{}

	acres := map[string]float64{}
	for _, entry := range data.BuiltinAcreage() {
		acres[entry.Case] = entry.Acres
	}
	for name := range data.BuiltinCases() {
		byID[name] = models.CaseInfo{
			ID:     name,
			Name:   name,
			Acres:  acres[name],
			Source: "builtin",
		}
	}

	entries, err := os.ReadDir(h.casesDir)
	if err != nil {
		log.Printf("CasesHandler: Failed to read cases directory %s: %v", h.casesDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.casesDir, entry.Name())
		cases, err := config.LoadCases(path)
		if err != nil {
			log.Printf("CasesHandler: Failed to load case file %s: %v", path, err)
			continue
		}
		for name := range cases {
			byID[name] = models.CaseInfo{
				ID:     name,
				Name:   name,
				File:   path,
				Acres:  acres[name],
				Source: "file",
			}
		}
	}

	out := make([]models.CaseInfo, 0, len(byID))
	for _, info := range byID {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	c.JSON(http.StatusOK, gin.H{"cases": out})
}
