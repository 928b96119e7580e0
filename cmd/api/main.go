package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lifecarelabs/lab-portal/internal/config"
	dbpkg "github.com/lifecarelabs/lab-portal/internal/db"
	"github.com/lifecarelabs/lab-portal/internal/infra/blobstore"
	"github.com/lifecarelabs/lab-portal/internal/infra/redisconn"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	"github.com/lifecarelabs/lab-portal/internal/models"
	"github.com/lifecarelabs/lab-portal/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente
	godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := redisconn.New(cfg)

	var store blobstore.ArtifactStore
	if cfg.UseS3() {
		store = blobstore.NewS3Store(cfg)
	} else {
		store = blobstore.NewDiskStore(cfg.UploadDir)
	}

	seedAdmin(db, cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// seedAdmin garante ao menos uma conta da equipe no primeiro boot.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	admin := models.User{
		Name:         "Lab Admin",
		Email:        cfg.LabEmail,
		Phone:        "0000000000",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	log.Printf("seeded admin account %s (change the default password)", admin.Email)
}
