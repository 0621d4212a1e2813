package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Theijiii/plms-sys-sub005/internal/config"
	"github.com/Theijiii/plms-sys-sub005/internal/email/noop"
	"github.com/Theijiii/plms-sys-sub005/internal/email/ses"
	"github.com/Theijiii/plms-sys-sub005/internal/handler"
	"github.com/Theijiii/plms-sys-sub005/internal/ocr"
	"github.com/Theijiii/plms-sys-sub005/internal/port"
	"github.com/Theijiii/plms-sys-sub005/internal/refdata"
	"github.com/Theijiii/plms-sys-sub005/internal/repository/postgres"
	"github.com/Theijiii/plms-sys-sub005/internal/router"
	"github.com/Theijiii/plms-sys-sub005/internal/service"
	s3storage "github.com/Theijiii/plms-sys-sub005/internal/storage/s3"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	attemptRepo := postgres.NewAttemptRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)

	// Reference tables: months from config/embedded, categories preferably
	// from the database (so staff edits apply on restart), embedded otherwise.
	months, err := refdata.LoadMonths(cfg.Refdata.MonthsPath)
	if err != nil {
		return fmt.Errorf("failed to load month table: %w", err)
	}

	var categories []verify.Category
	records, err := categoryRepo.LoadAll(context.Background())
	if err == nil && len(records) > 0 {
		categories = refdata.CategoriesFromRecords(records)
		log.Printf("loaded %d document categories from database", len(categories))
	} else {
		if err != nil {
			log.Printf("category table unavailable in database, using embedded defaults: %v", err)
		}
		categories, err = refdata.LoadCategories(cfg.Refdata.CategoriesPath)
		if err != nil {
			return fmt.Errorf("failed to load category table: %w", err)
		}
	}

	engine := verify.NewEngine(
		verify.NewMonthTable(months),
		verify.NewCategoryTable(categories),
		verify.EngineConfig{
			NameThreshold:     cfg.Verify.SimilarityThreshold,
			IDNumberThreshold: cfg.Verify.IDNumberThreshold,
		},
	)

	// Initialize storage and collaborators
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	recognizer := ocr.NewClient(&cfg.OCR)

	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.PortalURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	fileSvc := service.NewFileService(fileRepo, s3Client, &cfg.S3)
	verificationSvc := service.NewVerificationService(engine, fileSvc, recognizer, attemptRepo, emailSender)

	// Initialize handlers
	verificationH := handler.NewVerificationHandler(verificationSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, verificationH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
