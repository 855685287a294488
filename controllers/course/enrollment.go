package courseController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"github.com/jetech-hub/jetech-api/realtime"
	"gorm.io/gorm"
)

type EnrollmentInput struct {
	CourseID          uint   `json:"course_id" binding:"required"`
	StudentName       string `json:"student_name" binding:"required"`
	StudentEmail      string `json:"student_email" binding:"required,email"`
	StudentPhone      string `json:"student_phone"`
	PreferredSchedule string `json:"preferred_schedule"`
}

type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapEnrollmentStatus(status string) (models.EnrollmentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.EnrollmentStatusPending):
		return models.EnrollmentStatusPending, nil
	case string(models.EnrollmentStatusConfirmed):
		return models.EnrollmentStatusConfirmed, nil
	case string(models.EnrollmentStatusCompleted):
		return models.EnrollmentStatusCompleted, nil
	case string(models.EnrollmentStatusCancelled):
		return models.EnrollmentStatusCancelled, nil
	default:
		return "", errors.New("invalid enrollment status")
	}
}

// POST /enrollments
func CreateEnrollment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EnrollmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var course models.Course
		if err := db.First(&course, input.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Course does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate course"})
			return
		}
		if !course.Active {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course is not open for enrollment"})
			return
		}

		enrollment := models.Enrollment{
			CourseID:          course.ID,
			StudentName:       input.StudentName,
			StudentEmail:      input.StudentEmail,
			StudentPhone:      input.StudentPhone,
			PreferredSchedule: input.PreferredSchedule,
			Status:            models.EnrollmentStatusPending,
		}
		if err := db.Create(&enrollment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enrollment"})
			return
		}

		enrollment.Course = course
		realtime.Broadcast("enrollment.created", enrollment)
		c.JSON(http.StatusCreated, enrollment)
	}
}

// GET /admin/enrollments
func GetAllEnrollments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Course").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var enrollments []models.Enrollment
		if err := query.Find(&enrollments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enrollments"})
			return
		}
		c.JSON(http.StatusOK, enrollments)
	}
}

// PUT /admin/enrollments/:id/status
func UpdateEnrollmentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateEnrollmentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapEnrollmentStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Enrollment{}).Where("id = ?", c.Param("id")).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update enrollment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Enrollment status updated successfully"})
	}
}
