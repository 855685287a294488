package serviceRequestController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"github.com/jetech-hub/jetech-api/realtime"
	"gorm.io/gorm"
)

type ServiceRequestInput struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Device        string `json:"device"`
	Issue         string `json:"issue" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
}

type UpdateServiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapServiceType(t string) (models.ServiceType, error) {
	switch strings.ToLower(t) {
	case string(models.ServiceTypeRepair):
		return models.ServiceTypeRepair, nil
	case string(models.ServiceTypeUpgrade):
		return models.ServiceTypeUpgrade, nil
	case string(models.ServiceTypeSwap):
		return models.ServiceTypeSwap, nil
	case string(models.ServiceTypeTraining):
		return models.ServiceTypeTraining, nil
	default:
		return "", errors.New("invalid service type")
	}
}

func mapServiceStatus(status string) (models.ServiceStatus, error) {
	switch strings.ToLower(status) {
	case string(models.ServiceStatusNew):
		return models.ServiceStatusNew, nil
	case string(models.ServiceStatusInProgress):
		return models.ServiceStatusInProgress, nil
	case string(models.ServiceStatusResolved):
		return models.ServiceStatusResolved, nil
	case string(models.ServiceStatusClosed):
		return models.ServiceStatusClosed, nil
	default:
		return "", errors.New("invalid service status")
	}
}

// POST /service-requests
func CreateServiceRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ServiceRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		serviceType, err := mapServiceType(input.ServiceType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request := models.ServiceRequest{
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			CustomerEmail: input.CustomerEmail,
			Device:        input.Device,
			Issue:         input.Issue,
			ServiceType:   serviceType,
			Status:        models.ServiceStatusNew,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service request"})
			return
		}

		realtime.Broadcast("service_request.created", request)
		c.JSON(http.StatusCreated, request)
	}
}

// GET /admin/service-requests
func GetAllServiceRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if t := c.Query("service_type"); t != "" {
			query = query.Where("service_type = ?", t)
		}

		var requests []models.ServiceRequest
		if err := query.Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// PUT /admin/service-requests/:id/status
func UpdateServiceRequestStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateServiceStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapServiceStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.ServiceRequest{}).Where("id = ?", c.Param("id")).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service request status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service request status updated successfully"})
	}
}
