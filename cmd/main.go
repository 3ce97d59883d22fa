package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fooddelivery/config"
	"fooddelivery/database"
	"fooddelivery/identity"
	"fooddelivery/middleware"
	"fooddelivery/repository"
	"fooddelivery/routes"
)

func main() {
	config.LoadEnv()

	database.ConnectMongo()
	database.InitCollections()
	database.EnsureIndexes()

	provider := identity.NewLocalProvider(
		repository.NewCredentialRepository(database.CredentialCollection),
		config.MustGetEnv("JWT_SECRET"),
	)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.CORS(config.CORSOrigins()))

	routes.RegisterRoutes(r, routes.FromMongo(provider))

	// Browser frontend. Kept off the API's top-level paths.
	r.Static("/app", "./web")
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/app/")
	})

	port := config.GetEnv("PORT", "4000")
	logrus.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
