package learnerRoutes

import (
	controllers "clinigoal/controllers/learner"
	"clinigoal/middleware"
	"clinigoal/store"
	"clinigoal/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupLearnerRoutes registers the learner surface. Everything past auth
// requires a stored session.
func SetupLearnerRoutes(app *fiber.App, local *store.Store) {
	authGroup := app.Group("/auth")
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/forgot-password", validators.Email(), controllers.ForgotPassword)
	authGroup.Post("/logout", controllers.Logout)

	learnerGroup := app.Group("/learner", middleware.RequireSession(local))

	learnerGroup.Get("/dashboard", controllers.Dashboard)
	learnerGroup.Delete("/dashboard/error", controllers.DismissDashboardError)
	learnerGroup.Post("/enroll", controllers.Enroll)
	learnerGroup.Put("/courses/:id/select", validators.EntityID(), controllers.SelectCourse)

	learnerGroup.Get("/sections/:section", controllers.OpenSection)
	learnerGroup.Put("/sections/:section/complete", controllers.MarkComplete)

	quizGroup := learnerGroup.Group("/quizzes")
	quizGroup.Post("/:id/start", validators.EntityID(), controllers.StartQuiz)
	quizGroup.Put("/:id/answer", validators.EntityID(), controllers.AnswerQuiz)
	quizGroup.Post("/:id/submit", validators.EntityID(), controllers.SubmitQuiz)

	learnerGroup.Post("/assignments", controllers.SubmitAssignment)

	certGroup := learnerGroup.Group("/certificate")
	certGroup.Get("/", controllers.CertificateStatus)
	certGroup.Post("/", controllers.GenerateCertificate)
	certGroup.Get("/download", controllers.DownloadCertificate)
	certGroup.Get("/print", controllers.PrintCertificate)
	certGroup.Post("/share", controllers.ShareCertificate)

	learnerGroup.Post("/reviews", controllers.SubmitReview)
}
