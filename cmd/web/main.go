package main

import (
	"log"
	"log/slog"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/config"
	apphttp "github.com/Gemy-star/reverse/internal/http"
	"github.com/Gemy-star/reverse/internal/mailer"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg.SMTP)

	r, err := apphttp.NewRouter(logger, db, cfg, mail)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
