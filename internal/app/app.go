package app

import (
	"time"

	"tasklite/internal/config"
	"tasklite/internal/store"
	"tasklite/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App bundles the configured router with the store it serves. There are
// no external connections to open or close: the data file is touched
// lazily, request by request.
type App struct {
	cfg    config.Config
	store  *store.FileStore
	router *gin.Engine
}

func New(cfg config.Config) *App {
	a := &App{cfg: cfg}
	a.store = store.NewFileStore(cfg.Storage.DataFile)
	a.router = newRouter(cfg, a.store)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func newRouter(cfg config.Config, st *store.FileStore) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.SetHTMLTemplate(web.Templates())

	Setup(r, cfg, st)
	return r
}
