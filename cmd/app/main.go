package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"sadhana/cmd/fx/account_fx"
	"sadhana/cmd/fx/controllers_fx"
	"sadhana/cmd/fx/db_fx"
	"sadhana/cmd/fx/devotee_fx"
	"sadhana/cmd/fx/sadhana_fx"
	"sadhana/internal/api/controllers"
	"sadhana/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		devotee_fx.Module,
		sadhana_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	devoteeController *controllers.DevoteeController,
	sadhanaController *controllers.SadhanaController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, devoteeController, sadhanaController)

	return r
}

// RegisterRoutes is the single place where each route's auth requirement is
// declared: public auth endpoints, token-only reads, and admin-gated
// mutations.
func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	devoteeController *controllers.DevoteeController,
	sadhanaController *controllers.SadhanaController) {

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	api.POST("/register", accountController.Register)
	api.POST("/login", accountController.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/devotees", devoteeController.ListVisible)
	authed.GET("/devotees/:id/initiated-name", devoteeController.InitiatedName)
	authed.GET("/facilitators", devoteeController.ListFacilitators)
	authed.GET("/counsellor/devotees", devoteeController.Caseload)

	authed.POST("/sadhana/add", sadhanaController.Add)
	authed.GET("/sadhana/entries/:email", sadhanaController.Entries)
	authed.PUT("/sadhana/update", sadhanaController.Update)
	authed.DELETE("/sadhana/delete", sadhanaController.Delete)
	authed.GET("/sadhana/by-email", sadhanaController.ByMonth)
	authed.GET("/sadhana/date/:id/:date", sadhanaController.ByDate)

	admin := authed.Group("")
	admin.Use(middleware.RoleMiddleware("admin"))

	admin.POST("/devotees", devoteeController.Create)
	admin.PUT("/devotees/:id", devoteeController.Update)
	admin.DELETE("/devotees/:id", devoteeController.Delete)
	admin.POST("/devotees/bulk", devoteeController.BulkCreate)
	admin.PUT("/users/assign-role", accountController.AssignRole)
	admin.GET("/users/by-email", accountController.GetByEmail)
}
