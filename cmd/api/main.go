package main

import (
	"log"
	"net/http"
	"time"

	"class-scheduling/config"
	"class-scheduling/handlers"
	"class-scheduling/internal/archive"
	"class-scheduling/internal/gateway"
	"class-scheduling/internal/milp"
	"class-scheduling/internal/model"
	"class-scheduling/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

var solvers = map[string]func() milp.Solver{
	"glpk":      milp.NewGlpkSolver,
	"glpsol":    milp.NewGlpsolSolver,
	"gophersat": milp.NewGophersatSolver,
}

func main() {
	log.Println("Start service")
	_ = godotenv.Load()

	cfg := config.Load()

	newSolver, known := solvers[cfg.Solver]
	if !known {
		log.Fatalf("%v is not a valid solver", cfg.Solver)
	}
	scheduler := model.NewScheduler(newSolver())

	gw := gateway.New(http.DefaultClient, cfg.MainServiceGetData, cfg.MainServicePostSchedule, cfg.CacheTTL)

	var scheduleArchive handlers.Archiver
	if cfg.ArchiveEnabled {
		store, err := archive.New(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize archive: %v", err)
		}
		scheduleArchive = store
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduler, gw, scheduleArchive, cfg.SolveTimeout)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		api.GET("/generate-schedule", scheduleHandler.GenerateSchedule)
	}

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: cors.Default().Handler(router),
		// Solves can run long; the write timeout must outlive the solve budget
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.SolveTimeout + 30*time.Second,
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
