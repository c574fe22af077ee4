package handler

import (
	"net/http"

	"linkscan/config"
	"linkscan/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// educationPageURL is where the client's "learn more" button lands.
const educationPageURL = "https://krebsonsecurity.com/"

// MetaHandler serves the version and informational endpoints.
type MetaHandler struct {
	version string
}

// NewMetaHandler is the constructor for MetaHandler, injected by Fx.
func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{
		version: cfg.Env.Version,
	}
}

// VersionStatus reports the latest application version so the client can
// prompt for updates.
func (h *MetaHandler) VersionStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Version{LatestVersion: h.version})
}

// EducationPage redirects to the security-education site.
func (h *MetaHandler) EducationPage(c echo.Context) error {
	return c.Redirect(http.StatusFound, educationPageURL)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
