package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "guardia/docs"
	"guardia/internal/auth"
	"guardia/internal/config"
	"guardia/internal/database"
	"guardia/internal/handler"
	"guardia/internal/hashid"
	"guardia/internal/middleware"
	"guardia/internal/model"
	"guardia/internal/repository"
	"guardia/internal/storage"
	"guardia/internal/watermark"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	log    *zap.Logger
}

func Init(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	codec, err := hashid.New(cfg.HashidSalt, cfg.HashidMinLength)
	if err != nil {
		return nil, err
	}

	var store storage.ObjectStore = storage.Disabled{}
	if cfg.StorageEnabled() {
		b2, err := storage.NewB2(ctx, cfg.B2KeyID, cfg.B2AppKey, cfg.B2Bucket)
		if err != nil {
			return nil, fmt.Errorf("object storage: %w", err)
		}
		store = b2
		log.Info("object storage ready", zap.String("bucket", cfg.B2Bucket))
	} else {
		log.Warn("B2 credentials missing, uploads are disabled")
	}

	var stamper watermark.Stamper = watermark.Passthrough{}
	if cfg.WatermarkURL != "" {
		stamper = watermark.NewClient(cfg.WatermarkURL, cfg.WatermarkTimeout)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	registerRoutes(r, routeDeps{
		cfg:     cfg,
		db:      db,
		codec:   codec,
		store:   store,
		stamper: stamper,
		log:     log,
	})

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		log:    log,
	}, nil
}

type routeDeps struct {
	cfg     *config.Config
	db      *gorm.DB
	codec   *hashid.Codec
	store   storage.ObjectStore
	stamper watermark.Stamper
	log     *zap.Logger
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	cfg, log := d.cfg, d.log
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	staffCookie := middleware.SessionCookie{Name: middleware.SessionCookieName, Secure: cfg.CookieSecure}
	vigilanteCookie := middleware.SessionCookie{Name: middleware.VigilanteCookieName, Secure: cfg.CookieSecure}

	// Initialize repositories
	negocioRepo := repository.NewNegocioRepository(d.db)
	unidadRepo := repository.NewUnidadRepository(d.db)
	puestoRepo := repository.NewPuestoRepository(d.db)
	colaboradorRepo := repository.NewColaboradorRepository(d.db)
	cumplidoRepo := repository.NewCumplidoRepository(d.db)
	ausenciaRepo := repository.NewAusenciaRepository(d.db)
	novedadRepo := repository.NewNovedadRepository(d.db)
	usuarioRepo := repository.NewUsuarioRepository(d.db)
	tipoTurnoRepo := repository.NewCatalogRepository[model.TipoTurno](d.db)
	tipoAusenciaRepo := repository.NewCatalogRepository[model.TipoAusencia](d.db)
	tipoNovedadRepo := repository.NewCatalogRepository[model.TipoNovedad](d.db)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(usuarioRepo, tokens, staffCookie, cfg.JWTTTL, log)
	usuarioHandler := handler.NewUsuarioHandler(usuarioRepo, log)
	negocioHandler := handler.NewNegocioHandler(negocioRepo, d.codec, cfg.PublicBaseURL, log)
	puestoHandler := handler.NewPuestoHandler(negocioRepo, unidadRepo, puestoRepo, log)
	colaboradorHandler := handler.NewColaboradorHandler(negocioRepo, colaboradorRepo, log)
	tipoTurnoHandler := handler.NewCatalogHandler[model.TipoTurno](tipoTurnoRepo, "tipos_turno", log)
	tipoAusenciaHandler := handler.NewCatalogHandler[model.TipoAusencia](tipoAusenciaRepo, "tipos_ausencia", log)
	tipoNovedadHandler := handler.NewCatalogHandler[model.TipoNovedad](tipoNovedadRepo, "tipos_novedad", log)
	ausenciaHandler := handler.NewAusenciaHandler(ausenciaRepo, colaboradorRepo, tipoAusenciaRepo, log)
	novedadHandler := handler.NewNovedadHandler(novedadRepo, log)
	cumplidoHandler := handler.NewCumplidoHandler(handler.CumplidoDeps{
		Cumplidos:     cumplidoRepo,
		Colaboradores: colaboradorRepo,
		Puestos:       puestoRepo,
		Ausencias:     ausenciaRepo,
		Store:         d.store,
		Stamper:       d.stamper,
		MaxUpload:     cfg.UploadMaxBytes,
		Log:           log,
	})
	vigilanteHandler := handler.NewVigilanteHandler(handler.VigilanteDeps{
		Colaboradores: colaboradorRepo,
		Cumplidos:     cumplidoRepo,
		Puestos:       puestoRepo,
		TiposNovedad:  tipoNovedadRepo,
		Novedades:     novedadRepo,
		Store:         d.store,
		Tokens:        tokens,
		Cookie:        vigilanteCookie,
		TTL:           cfg.VigilanteJWTTTL,
		MaxUpload:     cfg.UploadMaxBytes,
		Log:           log,
	})

	r.GET("/healthz", healthz(d.db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/publico/negocios/:hash", negocioHandler.Publico)
	api.POST("/vigilante/login", middleware.NegocioFromHeader(d.codec, negocioRepo, log), vigilanteHandler.Login)

	// Guard routes
	vigilante := api.Group("/vigilante")
	vigilante.Use(middleware.VigilanteAuth(middleware.VigilanteAuthConfig{
		Tokens:        tokens,
		Codec:         d.codec,
		Negocios:      negocioRepo,
		Colaboradores: colaboradorRepo,
		Cookie:        vigilanteCookie,
		Log:           log,
	}))
	{
		vigilante.GET("/me", vigilanteHandler.Me)
		vigilante.GET("/cumplidos", vigilanteHandler.Cumplidos)
		vigilante.GET("/puestos", vigilanteHandler.Puestos)
		vigilante.GET("/tipos-novedad", vigilanteHandler.TiposNovedad)
		vigilante.POST("/novedades", vigilanteHandler.CreateNovedad)
	}

	// Staff routes. Reads of configuration are open to every staff role,
	// writes need the matching permission.
	staff := api.Group("")
	staff.Use(middleware.StaffAuth(tokens, usuarioRepo, staffCookie, log))
	{
		staff.GET("/auth/me", authHandler.Me)

		staff.GET("/negocios", negocioHandler.List)
		staff.GET("/negocios/:id/unidades", puestoHandler.ListUnidades)
		staff.GET("/negocios/:id/colaboradores", colaboradorHandler.List)
		staff.GET("/puestos", puestoHandler.ListPuestos)
		staff.GET("/tipos-turno", tipoTurnoHandler.List)
		staff.GET("/tipos-ausencia", tipoAusenciaHandler.List)
		staff.GET("/tipos-novedad", tipoNovedadHandler.List)
	}

	configuracion := staff.Group("", middleware.RequirePermission(model.PermConfiguracion))
	{
		configuracion.POST("/negocios", negocioHandler.Create)
		configuracion.PUT("/negocios/:id", negocioHandler.Update)
		configuracion.GET("/negocios/:id/enlace", negocioHandler.Enlace)
		configuracion.POST("/negocios/:id/unidades", puestoHandler.CreateUnidad)
		configuracion.PUT("/unidades/:id", puestoHandler.UpdateUnidad)
		configuracion.POST("/puestos", puestoHandler.CreatePuesto)
		configuracion.PUT("/puestos/:id", puestoHandler.UpdatePuesto)
		configuracion.POST("/negocios/:id/colaboradores", colaboradorHandler.Create)
		configuracion.PUT("/colaboradores/:id", colaboradorHandler.Update)
		configuracion.POST("/tipos-turno", tipoTurnoHandler.Create)
		configuracion.POST("/tipos-ausencia", tipoAusenciaHandler.Create)
		configuracion.POST("/tipos-novedad", tipoNovedadHandler.Create)
	}

	cumplidos := staff.Group("/cumplidos", middleware.RequirePermission(model.PermCumplidos))
	{
		cumplidos.GET("", cumplidoHandler.List)
		cumplidos.POST("", cumplidoHandler.Assign)
		cumplidos.POST("/import", cumplidoHandler.Import)
		cumplidos.GET("/:id/nota", cumplidoHandler.GetNota)
		cumplidos.PUT("/:id/nota", cumplidoHandler.SaveNota)
		cumplidos.POST("/:id/archivos", cumplidoHandler.UploadArchivo)
		cumplidos.GET("/:id/archivos/:tipo", cumplidoHandler.LatestArchivo)
		cumplidos.DELETE("/:id/archivos", cumplidoHandler.DeleteArchivos)
	}

	ausencias := staff.Group("/ausencias", middleware.RequirePermission(model.PermAusencias))
	{
		ausencias.GET("", ausenciaHandler.List)
		ausencias.POST("", ausenciaHandler.Create)
		ausencias.DELETE("/:id", ausenciaHandler.Delete)
	}

	novedades := staff.Group("/novedades", middleware.RequirePermission(model.PermNovedades))
	{
		novedades.GET("", novedadHandler.List)
		novedades.PATCH("/:id", novedadHandler.UpdateEstado)
	}

	usuarios := staff.Group("/usuarios", middleware.RequirePermission(model.PermUsuarios))
	{
		usuarios.GET("", usuarioHandler.List)
		usuarios.POST("", usuarioHandler.Create)
	}
}

// healthz reports whether the database answers a ping.
func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Run serves until SIGINT or SIGTERM and then shuts down gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.log.Info("server exited properly")
	return nil
}
