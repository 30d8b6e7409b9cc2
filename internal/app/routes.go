package app

import (
	"tasklite/internal/config"
	"tasklite/internal/handlers"
	"tasklite/internal/service"
	"tasklite/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, st store.TodoStore) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	todoSvc := service.NewTodoService()
	todoHandler := handlers.NewTodoHandler(todoSvc, st)
	registerTodoRoutes(r, todoHandler)
}

func registerTodoRoutes(r *gin.Engine, h *handlers.TodoHandler) {
	r.GET("/", h.Index)
	r.POST("/add", h.Add)
	r.POST("/toggle/:id", h.Toggle)
	r.POST("/delete/:id", h.Delete)
	r.POST("/restore/:id", h.Restore)
	r.POST("/clear/completed", h.ClearCompleted)
	r.POST("/clear/deleted", h.ClearDeleted)
	r.GET("/api/todos", h.APIList)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
