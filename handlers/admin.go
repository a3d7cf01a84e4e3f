// admin.go - Handles the dashboard admin account: profile, login,
// password changes and settings

package handlers

import (
	"errors"
	"net/http"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// ProfileUpdateInput is the patch body for the admin profile. Every
// field is optional; omitted fields are left unchanged.
type ProfileUpdateInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	AvatarURL       *string `json:"avatarUrl"`
	DarkModeAuto    *bool   `json:"darkModeAuto"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
}

// LoginInput carries the admin credentials. The email is accepted for
// contract compatibility but the admin row is a singleton, so only the
// password is checked.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordInput is the body for the dedicated password endpoint.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// SettingsInput holds the admin display preference.
type SettingsInput struct {
	DarkModeAuto *bool `json:"darkModeAuto" binding:"required"`
}

// findAdmin loads the singleton admin row, writing the error response
// itself when the row is missing.
func findAdmin(c *gin.Context) (*models.Admin, bool) {
	var admin models.Admin
	if err := database.DB.First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &admin, true
}

// GetAdminProfile returns the admin profile projection.
func GetAdminProfile(c *gin.Context) {
	admin, ok := findAdmin(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, admin.Profile())
}

// UpdateAdminProfile applies a partial profile update and, when a new
// password is supplied, verifies the current one first.
func UpdateAdminProfile(c *gin.Context) {
	var input ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := findAdmin(c)
	if !ok {
		return
	}

	if input.NewPassword != nil && *input.NewPassword != "" {
		if input.CurrentPassword == nil || *input.CurrentPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is required to change password"})
			return
		}
		if !admin.CheckPassword(*input.CurrentPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
			return
		}
		if len(*input.NewPassword) < minPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password must be at least 6 characters long"})
			return
		}
		if err := admin.SetPassword(*input.NewPassword); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating profile"})
			return
		}
	}

	if input.Name != nil {
		admin.Name = *input.Name
	}
	if input.Email != nil {
		admin.Email = *input.Email
	}
	if input.Phone != nil {
		admin.Phone = *input.Phone
	}
	if input.AvatarURL != nil {
		admin.AvatarURL = *input.AvatarURL
	}
	if input.DarkModeAuto != nil {
		admin.DarkModeAuto = *input.DarkModeAuto
	}

	if err := database.DB.Save(admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// AdminLogin checks the supplied password against the stored hash.
// This is a stateless credential check; no session or token is issued.
func AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := findAdmin(c)
	if !ok {
		return
	}

	if !admin.CheckPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   admin.Profile(),
	})
}

// ChangeAdminPassword verifies the current password and stores a hash
// of the new one.
func ChangeAdminPassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := findAdmin(c)
	if !ok {
		return
	}

	if !admin.CheckPassword(input.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
		return
	}
	if len(input.NewPassword) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new password must be at least 6 characters long"})
		return
	}

	if err := admin.SetPassword(input.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error changing password"})
		return
	}
	if err := database.DB.Save(admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error changing password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// UpdateAdminSettings overwrites the display preference.
func UpdateAdminSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := findAdmin(c)
	if !ok {
		return
	}

	admin.DarkModeAuto = *input.DarkModeAuto
	if err := database.DB.Save(admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
