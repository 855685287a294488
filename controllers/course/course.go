package courseController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

type CourseInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Schedule    string `json:"schedule"`
	Price       int64  `json:"price" binding:"min=0"`
	Image       string `json:"image"`
	Active      *bool  `json:"active"`
}

// GET /courses
func GetCourses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Course{})
		// The storefront only sees active courses; the back office passes all=true.
		if c.Query("all") != "true" {
			query = query.Where("active = ?", true)
		}

		var courses []models.Course
		if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
			return
		}
		c.JSON(http.StatusOK, courses)
	}
}

// GET /courses/:slug
func GetCourseBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course slug is required"})
			return
		}

		var course models.Course
		if err := db.Where("slug = ?", slug).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
			}
			return
		}
		c.JSON(http.StatusOK, course)
	}
}

// POST /admin/courses
func CreateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CourseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		course := models.Course{
			Title:       input.Title,
			Slug:        input.Slug,
			Description: input.Description,
			Duration:    input.Duration,
			Schedule:    input.Schedule,
			Price:       input.Price,
			Image:       input.Image,
			Active:      true,
		}
		if input.Active != nil {
			course.Active = *input.Active
		}

		if err := db.Create(&course).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
			return
		}
		c.JSON(http.StatusCreated, course)
	}
}

// PUT /admin/courses/:id
func UpdateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var course models.Course
		if err := db.First(&course, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		var input CourseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		course.Title = input.Title
		course.Slug = input.Slug
		course.Description = input.Description
		course.Duration = input.Duration
		course.Schedule = input.Schedule
		course.Price = input.Price
		if input.Image != "" {
			course.Image = input.Image
		}
		if input.Active != nil {
			course.Active = *input.Active
		}

		if err := db.Save(&course).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
			return
		}
		c.JSON(http.StatusOK, course)
	}
}

// DELETE /admin/courses/:id
func DeleteCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.Course{}, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
	}
}
