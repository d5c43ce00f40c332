package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"stockroom/internal/config"
	"stockroom/internal/http/handlers"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		AppName: "Stockroom Inventory API",
		Views:   engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false, "error": "internal server error",
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))

	app.Static("/static", "./web/static")

	// ---------- Handlers ----------
	deps := handlers.NewDeps(db)

	// Pages
	app.Get("/", deps.PageHandler.Dashboard)
	app.Get("/stock", deps.PageHandler.StockList)
	app.Get("/stock/add", deps.PageHandler.StockAdd)
	app.Get("/stock/:id/edit", deps.PageHandler.StockEdit)
	app.Get("/transactions", deps.PageHandler.Transactions)
	app.Get("/transactions/history", deps.PageHandler.TransactionHistory)
	app.Get("/reports", deps.PageHandler.ReportsPage)

	// API
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	api.Get("/skus", deps.SKUHandler.List)
	api.Get("/skus/categories", deps.SKUHandler.Categories)
	api.Get("/skus/:id", deps.SKUHandler.Get)
	api.Post("/skus", deps.SKUHandler.Create)
	api.Put("/skus/:id", deps.SKUHandler.Update)
	api.Delete("/skus/:id", deps.SKUHandler.Delete)

	api.Get("/transactions", deps.TransactionHandler.List)
	api.Post("/transactions", deps.TransactionHandler.Create)

	api.Get("/dashboard/stats", deps.DashboardHandler.Stats)

	api.Get("/reports/dead-stock", deps.ReportHandler.DeadStock)
	api.Get("/reports/reorder", deps.ReportHandler.Reorder)
	api.Get("/reports/top-selling", deps.ReportHandler.TopSelling)
	api.Get("/reports/slow-moving", deps.ReportHandler.SlowMoving)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "endpoint not found"})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	// ---------- Graceful shutdown ----------
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}
	log.Println("server exited")
}
