package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/jetech-hub/jetech-api/controllers/admin"
	certificateController "github.com/jetech-hub/jetech-api/controllers/certificate"
	courseController "github.com/jetech-hub/jetech-api/controllers/course"
	gadgetController "github.com/jetech-hub/jetech-api/controllers/gadget"
	serviceRequestController "github.com/jetech-hub/jetech-api/controllers/servicerequest"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront endpoints that need no auth.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Gadget Catalog ────────────────
	r.GET("/gadgets", gadgetController.GetGadgets(db))
	r.GET("/gadgets/featured", gadgetController.GetFeaturedGadgets(db))
	r.GET("/gadgets/:id", gadgetController.GetGadgetByID(db))
	r.GET("/categories", gadgetController.GetAllCategoriesWithGadgets(db))

	// ──────────────── Courses & Enrollment ────────────────
	r.GET("/courses", courseController.GetCourses(db))
	r.GET("/courses/:slug", courseController.GetCourseBySlug(db))
	r.POST("/enrollments", courseController.CreateEnrollment(db))

	// ──────────────── Service Requests ────────────────
	r.POST("/service-requests", serviceRequestController.CreateServiceRequest(db))

	// ──────────────── Certificate Verification ────────────────
	r.GET("/verify/:number", certificateController.VerifyCertificate(db))

	// ──────────────── Homepage Content ────────────────
	r.GET("/banners", adminController.GetBanners(db))
}
