package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/jetech-hub/jetech-api/controllers/admin"
	cartControllers "github.com/jetech-hub/jetech-api/controllers/cart"
	certificateController "github.com/jetech-hub/jetech-api/controllers/certificate"
	courseController "github.com/jetech-hub/jetech-api/controllers/course"
	gadgetController "github.com/jetech-hub/jetech-api/controllers/gadget"
	orderControllers "github.com/jetech-hub/jetech-api/controllers/order"
	serviceRequestController "github.com/jetech-hub/jetech-api/controllers/servicerequest"
	userControllers "github.com/jetech-hub/jetech-api/controllers/user"
	"github.com/jetech-hub/jetech-api/middleware"
	"github.com/jetech-hub/jetech-api/realtime"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	cartRepo := cartControllers.NewGormRepository(db)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(db))

		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Gadget Management ───────────
		gadgetAdmin := adminGroup.Group("/gadgets")
		{
			gadgetAdmin.POST("", gadgetController.CreateGadget(db))
			gadgetAdmin.PUT("/:id", gadgetController.UpdateGadget(db))
			gadgetAdmin.GET("", gadgetController.GetGadgets(db))
			gadgetAdmin.DELETE("/:id", gadgetController.DeleteGadget(db))
			gadgetAdmin.POST("/import-excel", gadgetController.ImportGadgetsFromExcel(db))
			gadgetAdmin.GET("/export-excel", gadgetController.ExportGadgetsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", gadgetController.CreateCategory(db))
			categoryAdmin.PUT("/:id", gadgetController.UpdateCategory(db))
			categoryAdmin.GET("", gadgetController.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", gadgetController.DeleteCategory(db))
		}

		// ─────────── Course Management ───────────
		courseAdmin := adminGroup.Group("/courses")
		{
			courseAdmin.POST("", courseController.CreateCourse(db))
			courseAdmin.PUT("/:id", courseController.UpdateCourse(db))
			courseAdmin.DELETE("/:id", courseController.DeleteCourse(db))
		}

		// ─────────── Enrollment Management ───────────
		enrollmentAdmin := adminGroup.Group("/enrollments")
		{
			enrollmentAdmin.GET("", courseController.GetAllEnrollments(db))
			enrollmentAdmin.PUT("/:id/status", courseController.UpdateEnrollmentStatus(db))
		}

		// ─────────── Service Requests ───────────
		serviceAdmin := adminGroup.Group("/service-requests")
		{
			serviceAdmin.GET("", serviceRequestController.GetAllServiceRequests(db))
			serviceAdmin.PUT("/:id/status", serviceRequestController.UpdateServiceRequestStatus(db))
		}

		// ─────────── Certificates ───────────
		certAdmin := adminGroup.Group("/certificates")
		{
			certAdmin.POST("", certificateController.IssueCertificate(db))
			certAdmin.GET("", certificateController.GetAllCertificates(db))
			certAdmin.POST("/:number/revoke", certificateController.RevokeCertificate(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(db))
			bannerMgmt.GET("/", adminController.GetBanners(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db))
		}
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(cartRepo))
		}
	}

	// websocket endpoint for real-time back-office notifications
	r.GET("/admin/ws", realtime.Handler)
}
