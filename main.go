package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"clinigoal/backend"
	"clinigoal/certificate"
	"clinigoal/config"
	adminControllers "clinigoal/controllers/admin"
	learnerControllers "clinigoal/controllers/learner"
	"clinigoal/monitor"
	"clinigoal/progression"
	"clinigoal/push"
	adminRouter "clinigoal/routers/adminRoutes"
	learnerRouter "clinigoal/routers/learnerRoutes"
	"clinigoal/store"
	"clinigoal/utils"
)

func main() {
	config.LoadConfig()

	local, err := store.Open(config.AppConfig.StorePath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	api := backend.New(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout, func() string {
		token, _ := local.Token()
		return token
	})

	approvals := monitor.New(api, config.AppConfig.PollInterval, config.AppConfig.NewFlagWindow)
	monitorHandle := approvals.Start()

	learner := progression.New(api, local)
	certGen := certificate.NewGenerator(config.AppConfig.CertFontPath)

	health := &utils.BackendHealth{}
	reviewCache := &utils.ReviewCache{}
	scheduler := utils.InitializeSchedulers(api, health, reviewCache)

	// Content push updates: a VIDEO_UPDATED event refreshes the course
	// list so name-matched content stays in sync.
	subscriber := push.New(config.AppConfig.PushURL)
	subscriber.On(push.EventVideoUpdated, func(push.Event) {
		if err := learner.RefreshCourses(); err != nil {
			log.Printf("Course refresh after push update failed: %v", err)
		}
	})
	pushHandle := subscriber.Start()

	adminControllers.Setup(api, approvals, health, reviewCache)
	learnerControllers.Setup(api, local, learner, certGen, config.AppConfig.PassingScorePct)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	adminRouter.SetupAdminRoutes(app)
	learnerRouter.SetupLearnerRoutes(app, local)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		monitorHandle.Stop()
		pushHandle.Stop()
		scheduler.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}
}
