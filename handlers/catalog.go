// catalog.go - Handles products, categories and the dashboard
// ranking views

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput is the body for product creation and update.
type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Rating      float64         `json:"rating"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	UserID      uint            `json:"userId" binding:"required"`
}

// CategoryInput is the body for category creation.
type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// ProductView is the flat projection the dashboard renders: category
// and seller are inlined instead of nested.
type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	ListedBy    string          `json:"listedBy"`
	AvatarURL   string          `json:"avatarUrl"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
}

func productView(p *models.Product) ProductView {
	view := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
	}
	if p.Category != nil {
		view.Category = p.Category.Name
	}
	if p.User != nil {
		view.ListedBy = p.User.Name
		view.AvatarURL = p.User.AvatarURL
	}
	return view
}

func loadProducts() ([]models.Product, error) {
	var products []models.Product
	err := database.DB.Preload("Category").Preload("User").Find(&products).Error
	return products, err
}

func (in *ProductInput) validate() error {
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("price must be greater than 0")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return errors.New("rating must be between 0.0 and 5.0")
	}
	return nil
}

// ListProducts returns every product in the dashboard projection.
// Filtering by category happens client-side.
func ListProducts(c *gin.Context) {
	products, err := loadProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, productView(&products[i]))
	}
	c.JSON(http.StatusOK, views)
}

// GetProduct returns a single product with its category and seller.
func GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	err := database.DB.Preload("Category").Preload("User").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, productView(&product))
}

// CreateProduct inserts a product after checking the category and
// seller references exist.
func CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
		return
	}
	var seller models.User
	if err := database.DB.First(&seller, input.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seller not found"})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Rating:      input.Rating,
		CategoryID:  input.CategoryID,
		UserID:      input.UserID,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/products/%d", product.ID))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct overwrites a product's fields.
func UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	product.Rating = input.Rating
	product.CategoryID = input.CategoryID
	product.UserID = input.UserID
	if err := database.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProduct removes a product unless a cart line still references
// it (restrict).
func DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	references, err := database.ProductCartReferences(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if references > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("product %s is referenced by %d cart item(s); remove them first", product.Name, references),
		})
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// rankingLimit reads the optional ?limit query, defaulting to the five
// slots the dashboard shows.
func rankingLimit(c *gin.Context) int {
	limit := 5
	if param := c.Query("limit"); param != "" {
		if parsed, err := strconv.Atoi(param); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return limit
}

// TopRatedProducts ranks by rating descending, ties broken by price
// descending.
func TopRatedProducts(c *gin.Context) {
	products, err := loadProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Rating != products[j].Rating {
			return products[i].Rating > products[j].Rating
		}
		return products[i].Price.GreaterThan(products[j].Price)
	})

	if limit := rankingLimit(c); len(products) > limit {
		products = products[:limit]
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, productView(&products[i]))
	}
	c.JSON(http.StatusOK, views)
}

// TopSellingProducts ranks by the simulated sales score (there is no
// real sales counter): 0.7*rating + 0.3*(price/1000), descending.
func TopSellingProducts(c *gin.Context) {
	products, err := loadProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].SellScore() > products[j].SellScore()
	})

	if limit := rankingLimit(c); len(products) > limit {
		products = products[:limit]
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, productView(&products[i]))
	}
	c.JSON(http.StatusOK, views)
}

// ListCategories returns all categories.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory inserts a category.
func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: input.Name}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category unless products still belong to
// it (restrict).
func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	count, err := database.CategoryProductCount(category.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("category %s still has %d product(s); reassign them first", category.Name, count),
		})
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
