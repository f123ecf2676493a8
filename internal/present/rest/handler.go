package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arkforge/arkpid"
	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/internal/present/rest/middleware"
	"github.com/arkforge/arkpid/internal/present/rest/presenter"
	"github.com/arkforge/arkpid/internal/usecase"
	"github.com/arkforge/arkpid/noid"
)

type Handler struct {
	minter   *usecase.Minter
	resolver *usecase.Resolver
	auditor  *usecase.Auditor
}

func NewHandler(
	minter *usecase.Minter,
	resolver *usecase.Resolver,
	auditor *usecase.Auditor,
) *Handler {
	return &Handler{
		minter:   minter,
		resolver: resolver,
		auditor:  auditor,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *middleware.AdminAuthMiddleware) {
	e.GET("/", h.handleIndex)
	e.GET("/ark:/*", h.handleResolve)
	e.POST("/api/v1/mint", h.handleMint, admin.RequireAdmin)
	e.GET("/api/v1/audit", h.handleAudit, admin.RequireAdmin)
}

func (h *Handler) handleIndex(c echo.Context) error {
	return c.String(http.StatusOK, "arkpid")
}

func (h *Handler) handleResolve(c echo.Context) error {
	ctx := c.Request().Context()

	raw := c.Param("*")

	target, err := h.resolver.Resolve(ctx, raw)
	if err != nil {
		if errors.Is(err, arkpid.ErrMalformedIdentifier) || errors.Is(err, arkpid.ErrInvalidAuthority) {
			return presenter.BadRequestMessage(c, "not a valid ark")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "identifier not found")
		}
		return presenter.InternalError(c, err)
	}

	return c.Redirect(http.StatusFound, target)
}

func (h *Handler) handleMint(c echo.Context) error {
	ctx := c.Request().Context()

	var req arkpid.MintRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if req.Shoulder == "" || req.URL == "" || req.NAAN < 0 {
		return presenter.BadRequestMessage(c, "naan, shoulder and url are required")
	}

	mapping, err := h.minter.Mint(ctx, usecase.MintInput{
		NAAN:     req.NAAN,
		Shoulder: req.Shoulder,
		URL:      req.URL,
		Who:      req.Who,
		What:     req.What,
		When:     req.When,
		Template: req.Template,
	})
	if err != nil {
		if errors.Is(err, noid.ErrInvalidTemplate) || errors.Is(err, noid.ErrUnsupportedGenerator) {
			return presenter.BadRequest(c, err)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, err.Error())
		}
		return presenter.InternalError(c, err)
	}

	slog.Info("minted identifier", "identifier", mapping.Identifier, "shoulder", mapping.Shoulder)

	return presenter.Created(c, arkpid.MintResponse{
		ARK:        "ark:/" + mapping.Identifier,
		Identifier: mapping.Identifier,
		URL:        mapping.URL,
	})
}

func (h *Handler) handleAudit(c echo.Context) error {
	ctx := c.Request().Context()

	if ark := c.QueryParam("ark"); ark != "" {
		detail, err := h.auditor.CheckOne(ctx, ark)
		if err != nil {
			if errors.Is(err, arkpid.ErrMalformedIdentifier) || errors.Is(err, arkpid.ErrInvalidAuthority) {
				return presenter.BadRequestMessage(c, "not a valid ark")
			}
			if errors.Is(err, domain.ErrNotFound) {
				return presenter.NotFound(c, err.Error())
			}
			return presenter.InternalError(c, err)
		}
		return presenter.OK(c, detail)
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			return presenter.BadRequestMessage(c, "invalid limit parameter")
		}
		limit = parsed
	}

	verbose := false
	if verboseStr := c.QueryParam("verbose"); verboseStr != "" {
		parsed, err := strconv.ParseBool(verboseStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid verbose parameter")
		}
		verbose = parsed
	}

	report, err := h.auditor.Check(ctx, usecase.AuditFilter{
		Shoulder: c.QueryParam("shoulder"),
		Limit:    limit,
		Verbose:  verbose,
	})
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, report)
}
