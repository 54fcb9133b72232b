package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/masjid-annour/mosquee-backend/config"
	"github.com/masjid-annour/mosquee-backend/middleware"
	"github.com/masjid-annour/mosquee-backend/routes"
	"github.com/masjid-annour/mosquee-backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration error: ", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("PostgreSQL connected & migrated successfully!")

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, store.New(db), cfg)

	log.Println("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
