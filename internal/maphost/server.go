package maphost

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/geo"
	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

//go:embed templates/index.html
var indexHTML string

var pageTemplate = template.Must(template.New("index.html").Parse(indexHTML))

// BaseMap is a tile source the page can use as its base layer.
type BaseMap struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

const defaultBaseMapName = "OpenStreetMap"

var baseMaps = map[string]BaseMap{
	"OpenStreetMap": {
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors",
	},
	"OpenTopoMap": {
		URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
		Attribution: "&copy; OpenStreetMap contributors, SRTM | &copy; OpenTopoMap (CC-BY-SA)",
	},
	"CartoLight": {
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Attribution: "&copy; OpenStreetMap contributors &copy; CARTO",
	},
}

// ResolveBaseMap looks up a base layer by name, falling back to OpenStreetMap.
func ResolveBaseMap(name string) BaseMap {
	if bm, ok := baseMaps[name]; ok {
		return bm
	}
	return baseMaps[defaultBaseMapName]
}

type layersResponse struct {
	Ready  bool         `json:"ready"`
	Layers []*geo.Layer `json:"layers"`
}

// NewRouter exposes the host over HTTP: the Leaflet page, the display settings and the
// attached layers.
func NewRouter(h *Host) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Title":    "Home Page",
			"Settings": h.Settings,
			"BaseMap":  ResolveBaseMap(h.Settings.DefaultBaseMap),
		})
	})

	api := router.Group("/api")
	api.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"settings": h.Settings,
			"baseMap":  ResolveBaseMap(h.Settings.DefaultBaseMap),
		})
	})
	api.GET("/layers", func(c *gin.Context) {
		c.JSON(http.StatusOK, layersResponse{
			Ready:  h.Ready(),
			Layers: h.Layers(),
		})
	})

	router.GET("/healthz", func(c *gin.Context) {
		markers := lo.SumBy(h.Layers(), func(l *geo.Layer) int { return len(l.Markers) })
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": h.Ready(), "markers": markers})
	})

	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Map host listening on %s", addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("error starting server: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Map host stopped")
	return nil
}
