package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astro-profile/internal/domain/astro"
	"github.com/yanqian/astro-profile/internal/domain/auth"
	apperrors "github.com/yanqian/astro-profile/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	astroSvc astro.Service
	authSvc  auth.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(astroSvc astro.Service, authSvc auth.Service, logger *slog.Logger) *Handler {
	return &Handler{
		astroSvc: astroSvc,
		authSvc:  authSvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Register creates an account and returns a token.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, authError(err))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login exchanges credentials for a token.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, authError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UserProfile returns the authenticated account.
func (h *Handler) UserProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing credentials", nil))
		return
	}
	view, err := h.authSvc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, authError(err))
		return
	}
	c.JSON(http.StatusOK, view)
}

// BirthChart computes a profile without persisting it.
func (h *Handler) BirthChart(c *gin.Context) {
	var req astro.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.astroSvc.Calculate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, astroError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveAstroData computes a profile and stores it for the authenticated user.
func (h *Handler) SaveAstroData(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing credentials", nil))
		return
	}
	var req astro.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	resp, err := h.astroSvc.Save(c.Request.Context(), claims.UserID, req)
	if err != nil {
		abortWithError(c, astroError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LatestProfile returns the newest saved profile of the authenticated user.
func (h *Handler) LatestProfile(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing credentials", nil))
		return
	}
	record, err := h.astroSvc.Latest(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, astroError(err))
		return
	}
	c.JSON(http.StatusOK, record)
}

// History lists saved profiles, newest first.
func (h *Handler) History(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing credentials", nil))
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
		return
	}
	records, err := h.astroSvc.History(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		abortWithError(c, astroError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": records})
}

// Signs lists the twelve zodiac sectors.
func (h *Handler) Signs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"signs": h.astroSvc.Signs()})
}

// TrendingSigns returns the most frequently computed signs.
func (h *Handler) TrendingSigns(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
		return
	}
	kind := c.DefaultQuery("kind", astro.KindZodiac)
	items, err := h.astroSvc.Trending(c.Request.Context(), kind, limit)
	if err != nil {
		abortWithError(c, astroError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "signs": items})
}

func astroError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case astro.CodeInvalidInput, astro.CodeInvalidMoment, astro.CodeInvalidCoordinate:
		return NewHTTPError(http.StatusBadRequest, code, appMessage(err), err)
	case astro.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, code, appMessage(err), err)
	case astro.CodeEphemerisFailure:
		return NewHTTPError(http.StatusBadGateway, code, "ephemeris provider failed", err)
	case astro.CodeCalculation:
		return NewHTTPError(http.StatusInternalServerError, code, "astro calculation failed", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "astro_failed", "failed to process astro data", err)
	}
}

func authError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case "invalid_input":
		return NewHTTPError(http.StatusBadRequest, code, appMessage(err), err)
	case "email_exists":
		return NewHTTPError(http.StatusConflict, code, appMessage(err), err)
	case "invalid_credentials":
		return NewHTTPError(http.StatusUnauthorized, code, appMessage(err), err)
	case "user_not_found":
		return NewHTTPError(http.StatusNotFound, code, appMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "auth_failed", "authentication failed", err)
	}
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
