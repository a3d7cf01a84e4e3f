// user.go - Handles the user directory: CRUD, block/restrict state
// and admin-to-user messaging

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserInput is the body for user creation. The password is
// optional; when present it is stored as a bcrypt hash.
type CreateUserInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	AvatarURL   string `json:"avatarUrl"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateUserInput is the body for user updates. Only name, email and
// role are editable through this endpoint; avatar, phone and password
// are immutable here.
type UpdateUserInput struct {
	ID    uint   `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// parseID reads the numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// findUser loads a user by id, writing the 404 itself when absent.
func findUser(c *gin.Context, id uint) (*models.User, bool) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &user, true
}

// ListUsers returns every user projected to the list shape.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	c.JSON(http.StatusOK, summaries)
}

// GetUser returns a single user with their products, orders and
// received messages.
func GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var user models.User
	err := database.DB.
		Preload("Products").
		Preload("Orders").
		Preload("ReceivedMessages").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser inserts a new user and returns it with its assigned id.
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Role:        input.Role,
		AvatarURL:   input.AvatarURL,
		PhoneNumber: input.PhoneNumber,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating user"})
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/users/%d", user.ID))
	c.JSON(http.StatusCreated, user)
}

// UpdateUser overwrites the editable fields of a user. The path id and
// body id must agree.
func UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user ID mismatch"})
		return
	}

	user, ok := findUser(c, id)
	if !ok {
		return
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser hard-deletes a user. The delete is refused while the user
// still lists products or has message history (restrict); their cart,
// cart items and orders go with them (cascade).
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	products, messages, err := database.UserDependents(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("user %s still has %d listed product(s); remove them first", user.Name, products),
		})
		return
	}
	if messages > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("user %s has %d message(s) of history; reassign or remove them first", user.Name, messages),
		})
		return
	}

	if err := database.DeleteUserCascade(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// BlockUser blocks a user, permanently when no days are given, or as a
// temporary selling restriction for the given number of days. The two
// states are mutually exclusive: a temporary restriction always clears
// the permanent flag.
func BlockUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	daysParam := c.Query("days")
	if daysParam == "" {
		user.IsBlocked = true
		user.BlockUntil = nil
		if err := database.DB.Save(user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s has been permanently blocked.", user.Name)})
		return
	}

	days, err := strconv.Atoi(daysParam)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive number"})
		return
	}

	until := time.Now().UTC().AddDate(0, 0, days)
	user.IsBlocked = false
	user.BlockUntil = &until
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %s has been restricted from selling until %s.", user.Name, until.Format(time.RFC3339)),
	})
}

// UnblockUser returns a blocked user to the active state.
func UnblockUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	user.IsBlocked = false
	user.BlockUntil = nil
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s has been unblocked.", user.Name)})
}

// RestrictUser applies a temporary selling restriction. The dashboard
// calls this without parameters, so days defaults to 7.
func RestrictUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	days := 7
	if daysParam := c.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive number"})
			return
		}
		days = parsed
	}

	until := time.Now().UTC().AddDate(0, 0, days)
	user.IsBlocked = false
	user.BlockUntil = &until
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %s has been restricted from selling until %s.", user.Name, until.Format(time.RFC3339)),
	})
}

// UnrestrictUser lifts a temporary restriction before its expiry.
func UnrestrictUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	user.BlockUntil = nil
	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Restrictions have been removed from %s.", user.Name)})
}

// SendAdminMessage inserts a message from the admin to the given user.
// The body is either a raw JSON string or {"content": "..."}. Admin
// origin is tagged with FromAdmin and a nil sender id.
func SendAdminMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	var content string
	if err := json.Unmarshal(body, &content); err != nil {
		var wrapped struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message body"})
			return
		}
		content = wrapped.Content
	}
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content is required"})
		return
	}

	message := models.Message{
		Content:    content,
		ReceiverID: user.ID,
		SenderID:   nil,
		FromAdmin:  true,
		SentAt:     time.Now().UTC(),
	}
	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Message sent to %s", user.Name)})
}
