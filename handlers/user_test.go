// user_test.go - Tests for the user directory endpoints

package handlers

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserTestDB(t *testing.T) {
	t.Helper()
	_ = os.Remove("test_users.db")
	require.NoError(t, database.Connect("test_users.db"))
	t.Cleanup(func() { _ = os.Remove("test_users.db") })
}

func setupUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/users", ListUsers)
	r.POST("/api/users", CreateUser)
	r.GET("/api/users/:id", GetUser)
	r.PUT("/api/users/:id", UpdateUser)
	r.DELETE("/api/users/:id", DeleteUser)
	r.PUT("/api/users/:id/block", BlockUser)
	r.PUT("/api/users/:id/unblock", UnblockUser)
	r.PUT("/api/users/:id/restrict", RestrictUser)
	r.PUT("/api/users/:id/unrestrict", UnrestrictUser)
	r.POST("/api/users/:id/message", SendAdminMessage)
	return r
}

func createTestUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, PhoneNumber: "+212 600000001"}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func createTestProduct(t *testing.T, sellerID uint) *models.Product {
	t.Helper()
	category := models.Category{Name: "Fixture Category " + time.Now().Format("150405.000000")}
	require.NoError(t, database.DB.Create(&category).Error)
	product := models.Product{
		Name:       "Fixture Product",
		Price:      decimal.NewFromFloat(19.99),
		CategoryID: category.ID,
		UserID:     sellerID,
		Rating:     4.0,
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return &product
}

func TestCreateAndListUsers(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()

	w := doJSON(router, "POST", "/api/users", map[string]any{
		"name":        "Ilyas Kodri",
		"email":       "ilyas.kodri@example.com",
		"phoneNumber": "+212 600000001",
	})
	assert.Equal(t, 201, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/api/users/")

	w = doJSON(router, "GET", "/api/users", nil)
	assert.Equal(t, 200, w.Code)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Ilyas Kodri", summaries[0]["name"])
	assert.Equal(t, "ilyas.kodri@example.com", summaries[0]["email"])
	// List projection carries exactly the dashboard fields.
	assert.Contains(t, summaries[0], "imageUrl")
	assert.Contains(t, summaries[0], "phoneNumber")
	assert.NotContains(t, summaries[0], "role")
}

func TestGetUserNotFound(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()

	w := doJSON(router, "GET", "/api/users/999", nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetUserWithRelations(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()

	user := createTestUser(t, "Siham Beqali", "siham.beqali@example.com")
	createTestProduct(t, user.ID)
	require.NoError(t, database.DB.Create(&models.Order{UserID: user.ID, Status: models.OrderPending, OrderDate: time.Now().UTC()}).Error)

	w := doJSON(router, "GET", "/api/users/1", nil)
	assert.Equal(t, 200, w.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Products, 1)
	assert.Len(t, got.Orders, 1)
}

func TestUpdateUser(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Old Name", "old@example.com")

	// Path id and body id must agree.
	w := doJSON(router, "PUT", "/api/users/1", map[string]any{
		"id": 2, "name": "New Name", "email": "new@example.com", "role": "Seller",
	})
	assert.Equal(t, 400, w.Code)

	w = doJSON(router, "PUT", "/api/users/1", map[string]any{
		"id": 1, "name": "New Name", "email": "new@example.com", "role": "Seller",
	})
	assert.Equal(t, 204, w.Code)

	require.NoError(t, database.DB.First(user, user.ID).Error)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "Seller", user.Role)
	// Phone is immutable through this endpoint.
	assert.Equal(t, "+212 600000001", user.PhoneNumber)
}

func TestBlockUserPermanent(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Oussama Zerhouni", "oussama@example.com")

	w := doJSON(router, "PUT", "/api/users/1/block", nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "permanently blocked")

	require.NoError(t, database.DB.First(user, user.ID).Error)
	assert.True(t, user.IsBlocked)
	assert.Nil(t, user.BlockUntil)
}

func TestBlockUserTemporary(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Nawal Laamri", "nawal@example.com")

	before := time.Now().UTC()
	w := doJSON(router, "PUT", "/api/users/1/block?days=7", nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "restricted from selling until")

	require.NoError(t, database.DB.First(user, user.ID).Error)
	// Temporary restriction and permanent block are mutually exclusive.
	assert.False(t, user.IsBlocked)
	require.NotNil(t, user.BlockUntil)
	expected := before.AddDate(0, 0, 7)
	assert.WithinDuration(t, expected, *user.BlockUntil, time.Minute)
	assert.True(t, user.IsRestricted(time.Now().UTC()))

	// Zero or negative days are rejected.
	w = doJSON(router, "PUT", "/api/users/1/block?days=0", nil)
	assert.Equal(t, 400, w.Code)
}

func TestUnblockAndUnrestrict(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Ilyas Kodri", "ilyas@example.com")

	doJSON(router, "PUT", "/api/users/1/block", nil)
	w := doJSON(router, "PUT", "/api/users/1/unblock", nil)
	assert.Equal(t, 200, w.Code)
	require.NoError(t, database.DB.First(user, user.ID).Error)
	assert.False(t, user.IsBlocked)
	assert.Nil(t, user.BlockUntil)

	// Restrict defaults to 7 days when the dashboard sends no params.
	w = doJSON(router, "PUT", "/api/users/1/restrict", nil)
	assert.Equal(t, 200, w.Code)
	require.NoError(t, database.DB.First(user, user.ID).Error)
	require.NotNil(t, user.BlockUntil)

	w = doJSON(router, "PUT", "/api/users/1/unrestrict", nil)
	assert.Equal(t, 200, w.Code)
	// Fetch into a fresh struct: GORM leaves a pointer field untouched
	// when the scanned column is NULL, so reusing `user` would keep the
	// stale restrict timestamp.
	var refreshed models.User
	require.NoError(t, database.DB.First(&refreshed, user.ID).Error)
	assert.Nil(t, refreshed.BlockUntil)
}

func TestDeleteUserCascades(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Cart Owner", "cart.owner@example.com")
	seller := createTestUser(t, "Seller", "seller@example.com")
	product := createTestProduct(t, seller.ID)

	cart := models.Cart{UserID: user.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, database.DB.Create(&cart).Error)
	require.NoError(t, database.DB.Create(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}).Error)
	require.NoError(t, database.DB.Create(&models.Order{UserID: user.ID, Status: models.OrderConfirmed, OrderDate: time.Now().UTC()}).Error)

	w := doJSON(router, "DELETE", "/api/users/1", nil)
	assert.Equal(t, 204, w.Code)

	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	// The product belongs to the other user and survives.
	database.DB.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserWithProductsRestricted(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	seller := createTestUser(t, "Seller", "seller@example.com")
	createTestProduct(t, seller.ID)

	w := doJSON(router, "DELETE", "/api/users/1", nil)
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "listed product")

	// Nothing was deleted.
	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", seller.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserWithMessagesRestricted(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Receiver", "receiver@example.com")

	w := doJSON(router, "POST", "/api/users/1/message", map[string]string{"content": "hello"})
	assert.Equal(t, 200, w.Code)

	w = doJSON(router, "DELETE", "/api/users/1", nil)
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "message")

	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSendAdminMessage(t *testing.T) {
	setupUserTestDB(t)
	router := setupUserRouter()
	user := createTestUser(t, "Receiver", "receiver@example.com")

	// Missing target user.
	w := doJSON(router, "POST", "/api/users/999/message", map[string]string{"content": "hello"})
	assert.Equal(t, 404, w.Code)

	// Raw string body, as the original dashboard sends it.
	w = doJSON(router, "POST", "/api/users/1/message", "welcome aboard")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent to Receiver")

	var message models.Message
	require.NoError(t, database.DB.First(&message).Error)
	assert.Equal(t, "welcome aboard", message.Content)
	assert.Equal(t, user.ID, message.ReceiverID)
	assert.True(t, message.FromAdmin)
	// Admin origin is tagged, not a sentinel user id.
	assert.Nil(t, message.SenderID)
}
