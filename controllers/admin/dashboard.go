package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type dashboardStats struct {
	Gadgets         int64 `json:"gadgets"`
	Courses         int64 `json:"courses"`
	Users           int64 `json:"users"`
	Orders          int64 `json:"orders"`
	PendingOrders   int64 `json:"pending_orders"`
	Enrollments     int64 `json:"enrollments"`
	ServiceRequests int64 `json:"service_requests"`
	OpenServiceReqs int64 `json:"open_service_requests"`
	Certificates    int64 `json:"certificates"`
}

// GetDashboardStats runs the count queries for the admin landing page
// in parallel, one session per query.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats dashboardStats

		count := func(dest *int64, model interface{}, conds ...interface{}) func() error {
			return func() error {
				query := db.WithContext(c.Request.Context()).Model(model)
				if len(conds) > 0 {
					query = query.Where(conds[0], conds[1:]...)
				}
				return query.Count(dest).Error
			}
		}

		g, _ := errgroup.WithContext(c.Request.Context())
		g.Go(count(&stats.Gadgets, &models.Gadget{}))
		g.Go(count(&stats.Courses, &models.Course{}))
		g.Go(count(&stats.Users, &models.User{}))
		g.Go(count(&stats.Orders, &models.Order{}))
		g.Go(count(&stats.PendingOrders, &models.Order{}, "status = ?", models.OrderStatusPending))
		g.Go(count(&stats.Enrollments, &models.Enrollment{}))
		g.Go(count(&stats.ServiceRequests, &models.ServiceRequest{}))
		g.Go(count(&stats.OpenServiceReqs, &models.ServiceRequest{}, "status IN ?",
			[]models.ServiceStatus{models.ServiceStatusNew, models.ServiceStatusInProgress}))
		g.Go(count(&stats.Certificates, &models.Certificate{}))

		if err := g.Wait(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
