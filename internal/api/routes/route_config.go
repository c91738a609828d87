package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ppdew9811-hash/eduvoice/internal/api/handlers"
	"github.com/ppdew9811-hash/eduvoice/internal/middleware"
	"github.com/ppdew9811-hash/eduvoice/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	CreditHandler  handlers.CreditHandler
	PaymentHandler handlers.PaymentHandler
	VoiceHandler   handlers.VoiceHandler
	VideoHandler   handlers.VideoHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Credits()
	c.Payments()
	c.Voices()
	c.Videos()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Credits() {
	credits := c.App.Group("/api/v1/credits")
	{
		credits.Get("/packages", c.CreditHandler.GetPackages)
		credits.Get("/transactions", c.Middleware.AuthMiddleware(c.JWTService), c.CreditHandler.GetTransactionHistory)
	}
}

func (c *Config) Payments() {
	payments := c.App.Group("/api/v1/payments", c.Middleware.AuthMiddleware(c.JWTService))
	{
		payments.Post("", c.PaymentHandler.CreatePayment)
		payments.Post("/complete", c.PaymentHandler.CompletePayment)
	}
}

func (c *Config) Voices() {
	voices := c.App.Group("/api/v1/voices")
	{
		voices.Get("/celebrity", c.VoiceHandler.GetCelebrityVoices)
		voices.Post("/custom", c.Middleware.AuthMiddleware(c.JWTService), c.VoiceHandler.TrainVoice)
		voices.Get("/custom", c.Middleware.AuthMiddleware(c.JWTService), c.VoiceHandler.GetVoiceModels)
	}
}

func (c *Config) Videos() {
	videos := c.App.Group("/api/v1/videos", c.Middleware.AuthMiddleware(c.JWTService))
	{
		videos.Post("", c.VideoHandler.GenerateVideo)
		videos.Get("", c.VideoHandler.GetVideos)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhookHandler)
	c.App.Post("/webhook/voice-training", c.VoiceHandler.TrainingWebhookHandler)
	c.App.Post("/webhook/video-render", c.VideoHandler.RenderWebhookHandler)
}
