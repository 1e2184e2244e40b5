package adminRoutes

import (
	controllers "clinigoal/controllers/admin"
	"clinigoal/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes registers the admin dashboard surface.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Overview
	adminGroup.Get("/overview", controllers.Overview)
	adminGroup.Get("/analytics", controllers.Analytics)

	// Enrollment approvals
	approvalGroup := adminGroup.Group("/enrollments")
	approvalGroup.Get("/", controllers.ListApprovals)
	approvalGroup.Post("/refresh", controllers.RefreshApprovals)
	approvalGroup.Put("/:id/approve", validators.EntityID(), controllers.ApproveEnrollment)
	approvalGroup.Put("/:id/reject", validators.EntityID(), controllers.RejectEnrollment)
	approvalGroup.Put("/:id/revoke", validators.EntityID(), controllers.RevokeEnrollment)
	approvalGroup.Delete("/error", controllers.DismissApprovalError)

	// Course catalogue
	courseGroup := adminGroup.Group("/courses")
	courseGroup.Get("/", controllers.ListCourses)
	courseGroup.Post("/", validators.Course(), controllers.CreateCourse)
	courseGroup.Put("/:id", validators.EntityID(), validators.Course(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", validators.EntityID(), controllers.DeleteCourse)

	// Content management
	videoGroup := adminGroup.Group("/videos")
	videoGroup.Get("/", controllers.ListVideos)
	videoGroup.Post("/", validators.Content(), controllers.UploadVideo)
	videoGroup.Put("/:id", validators.EntityID(), validators.Content(), controllers.UpdateVideo)
	videoGroup.Delete("/:id", validators.EntityID(), controllers.DeleteVideo)

	noteGroup := adminGroup.Group("/notes")
	noteGroup.Get("/", controllers.ListNotes)
	noteGroup.Post("/", validators.Content(), controllers.UploadNote)
	noteGroup.Put("/:id", validators.EntityID(), validators.Content(), controllers.UpdateNote)
	noteGroup.Delete("/:id", validators.EntityID(), controllers.DeleteNote)

	quizGroup := adminGroup.Group("/quizzes")
	quizGroup.Get("/", controllers.ListQuizzes)
	quizGroup.Post("/", validators.Quiz(), controllers.CreateQuiz)
	quizGroup.Put("/:id", validators.EntityID(), validators.Quiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:id", validators.EntityID(), controllers.DeleteQuiz)

	// User tracking
	userGroup := adminGroup.Group("/users")
	userGroup.Get("/", controllers.ListUsers)
	userGroup.Get("/:id/enrollments", validators.EntityID(), controllers.UserEnrollments)
	userGroup.Delete("/:id", validators.EntityID(), controllers.DeleteUser)

	// Reviews
	reviewGroup := adminGroup.Group("/reviews")
	reviewGroup.Get("/", controllers.ListReviews)
	reviewGroup.Delete("/:id", validators.EntityID(), controllers.DeleteReview)
}
