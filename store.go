package main

import (
	"errors"
	"net/http"
	"sync"

	"biosite/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// profileMu serializes the read-modify-write cycle of every mutating handler
// on the singleton profile. Without it two concurrent index mutations could
// both validate against a stale collection length.
var profileMu sync.Mutex

// fetchProfile returns "the" profile via an unfiltered first-row fetch.
// A missing profile means the bootstrap never ran.
func fetchProfile() (*models.Profile, error) {
	var p models.Profile
	if err := db.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// loadProfile fetches the profile and writes the error response itself on
// failure so handlers can bail with a plain return.
func loadProfile(c *gin.Context) (*models.Profile, bool) {
	p, err := fetchProfile()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found")
		} else {
			respondErrorDetail(c, http.StatusInternalServerError, "Failed to fetch profile", err)
		}
		return nil, false
	}
	return p, true
}

// persistProfile saves the whole document; gorm refreshes UpdatedAt as part
// of the write.
func persistProfile(c *gin.Context, p *models.Profile) bool {
	if err := db.Save(p).Error; err != nil {
		respondErrorDetail(c, http.StatusInternalServerError, "Failed to save profile", err)
		return false
	}
	return true
}
