package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"gorm.io/gorm"

	"class-quiz-challenge/internal/config"
	"class-quiz-challenge/internal/db"
	"class-quiz-challenge/internal/quiz"
	"class-quiz-challenge/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	var conn *gorm.DB
	if os.Getenv("DATABASE_URL") != "" {
		opened, err := db.Open()
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := db.Migrate(opened); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		tunePool(opened, cfg)
		conn = opened
	}

	catalog, source, err := loadCatalog(conn, cfg)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	log.Printf("catalog loaded source=%s items=%d", source, catalog.Len())

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(conn, catalog, cfg)
	log.Printf("class-quiz-challenge server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog prefers the database, then a catalog file, then the builtin
// set.
func loadCatalog(conn *gorm.DB, cfg config.Config) (quiz.Catalog, string, error) {
	if conn != nil {
		items, err := db.ListItems(conn)
		if err != nil {
			return quiz.Catalog{}, "", err
		}
		if len(items) > 0 {
			catalog, err := quiz.NewCatalog(items)
			return catalog, "database", err
		}
		log.Printf("catalog table empty, falling back")
	}
	if cfg.CatalogPath != "" {
		catalog, err := quiz.LoadFile(cfg.CatalogPath)
		return catalog, cfg.CatalogPath, err
	}
	return quiz.Builtin(), "builtin", nil
}

func tunePool(conn *gorm.DB, cfg config.Config) {
	sqlDB, err := conn.DB()
	if err != nil {
		log.Printf("failed to tune db pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
}
