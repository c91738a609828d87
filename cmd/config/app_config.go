package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/ppdew9811-hash/eduvoice/cmd/database/seeder"
	"github.com/ppdew9811-hash/eduvoice/internal/api/handlers"
	"github.com/ppdew9811-hash/eduvoice/internal/api/routes"
	"github.com/ppdew9811-hash/eduvoice/internal/middleware"
	"github.com/ppdew9811-hash/eduvoice/internal/utils"
	"github.com/ppdew9811-hash/eduvoice/internal/utils/storage"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/jobs"
	"github.com/ppdew9811-hash/eduvoice/pkg/jwt"
	"github.com/ppdew9811-hash/eduvoice/pkg/payment"
	"github.com/ppdew9811-hash/eduvoice/pkg/user"
	"github.com/ppdew9811-hash/eduvoice/pkg/video"
	"github.com/ppdew9811-hash/eduvoice/pkg/voice"
	"gorm.io/gorm"
)

// NewApp wires the whole application. With a nil db the in-memory
// repositories are used, which is the demo mode: everything works, data
// lives for the lifetime of the process.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var s3 storage.AwsS3
	if utils.GetConfig("AWS_ACCESS_KEY") != "" {
		s3 = storage.NewAwsS3()
	}

	// Repository
	var (
		userRepository   user.UserRepository
		creditRepository credit.CreditRepository
		voiceRepository  voice.VoiceRepository
		videoRepository  video.VideoRepository
	)
	if db != nil {
		userRepository = user.NewUserRepository(db)
		creditRepository = credit.NewCreditRepository(db)
		voiceRepository = voice.NewVoiceRepository(db)
		videoRepository = video.NewVideoRepository(db)
	} else {
		userRepository = user.NewMemoryUserRepository()
		creditRepository = credit.NewMemoryCreditRepository()
		voiceRepository = voice.NewMemoryVoiceRepository()
		videoRepository = video.NewMemoryVideoRepository()
	}

	if err := seeder.Seed(creditRepository, voiceRepository); err != nil {
		log.Fatalf("error seeding catalog data: %v", err)
	}

	// Service
	scheduler := jobs.NewTimerScheduler()
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	creditService := credit.NewCreditService(creditRepository, userRepository)
	paymentService := payment.NewPaymentService(creditService, userRepository)
	voiceService := voice.NewVoiceService(voiceRepository, userRepository, creditService, scheduler, s3)
	videoService := video.NewVideoService(videoRepository, userRepository, creditService, scheduler)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	creditHandler := handlers.NewCreditHandler(creditService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)
	voiceHandler := handlers.NewVoiceHandler(voiceService, validator)
	videoHandler := handlers.NewVideoHandler(videoService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		CreditHandler:  creditHandler,
		PaymentHandler: paymentHandler,
		VoiceHandler:   voiceHandler,
		VideoHandler:   videoHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
