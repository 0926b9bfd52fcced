package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"worldseed/internal/app/export"
	"worldseed/internal/app/generate"
	"worldseed/internal/app/ports"
	"worldseed/internal/app/simulate"
	"worldseed/internal/app/worldview"
	"worldseed/internal/domain/terrain"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	GenerateUC generate.UseCase
	WorldsUC   worldview.UseCase
	ExportUC   export.UseCase
	SimulateUC simulate.UseCase
	KPI        kpiSnapshotProvider

	// Defaults fills generation options the request body leaves unset.
	Defaults terrain.Options
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/worlds", h.createWorld)
	api.GET("/worlds", h.listWorlds)
	api.GET("/worlds/:id", h.getWorld)
	api.DELETE("/worlds/:id", h.deleteWorld)
	api.GET("/worlds/:id/cell", h.getCell)
	api.GET("/worlds/:id/region", h.getRegion)
	api.GET("/worlds/:id/map", h.exportMap)
	api.POST("/automata", h.runAutomaton)

	s.GET("/ops/kpi", h.kpi)
}

type createWorldRequest struct {
	Name    string             `json:"name"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Wrap    *bool              `json:"wrap,omitempty"`
	Options *generationOptions `json:"options,omitempty"`
}

type generationOptions struct {
	ElevationDensity    *float64 `json:"elevation_density,omitempty"`
	ElevationIterations *int     `json:"elevation_iterations,omitempty"`
	WaterThreshold      *int     `json:"water_threshold,omitempty"`
	SettlementDensity   *float64 `json:"settlement_density,omitempty"`
	FeatureDensity      *float64 `json:"feature_density,omitempty"`
	Seed                *int64   `json:"seed,omitempty"`
	Style               *string  `json:"style,omitempty"`
}

type automatonRequest struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Rule        string  `json:"rule"`
	FillDensity float64 `json:"fill_density"`
	Steps       int     `json:"steps"`
	Seed        int64   `json:"seed"`
}

func (h Handler) createWorld(c context.Context, ctx *app.RequestContext) {
	var body createWorldRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	wrap := true
	if body.Wrap != nil {
		wrap = *body.Wrap
	}

	resp, err := h.GenerateUC.Execute(c, generate.Request{
		Name:    body.Name,
		Width:   body.Width,
		Height:  body.Height,
		Wrap:    wrap,
		Options: h.mergeOptions(body.Options),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) mergeOptions(over *generationOptions) terrain.Options {
	opts := h.Defaults
	if over == nil {
		return opts
	}
	if over.ElevationDensity != nil {
		opts.ElevationDensity = *over.ElevationDensity
	}
	if over.ElevationIterations != nil {
		opts.ElevationIterations = *over.ElevationIterations
	}
	if over.WaterThreshold != nil {
		opts.WaterThreshold = *over.WaterThreshold
	}
	if over.SettlementDensity != nil {
		opts.SettlementDensity = *over.SettlementDensity
	}
	if over.FeatureDensity != nil {
		opts.FeatureDensity = *over.FeatureDensity
	}
	if over.Seed != nil {
		opts.Seed = *over.Seed
	}
	if over.Style != nil {
		opts.Style = terrain.Style(*over.Style)
	}
	return opts
}

func (h Handler) listWorlds(c context.Context, ctx *app.RequestContext) {
	resp, err := h.WorldsUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getWorld(c context.Context, ctx *app.RequestContext) {
	resp, err := h.WorldsUC.Get(c, worldview.WorldRequest{ID: worldID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteWorld(c context.Context, ctx *app.RequestContext) {
	if err := h.WorldsUC.Delete(c, worldview.WorldRequest{ID: worldID(ctx)}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.AbortWithStatus(consts.StatusNoContent)
}

func (h Handler) getCell(c context.Context, ctx *app.RequestContext) {
	x, err := queryInt(ctx, "x")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	y, err := queryInt(ctx, "y")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	resp, err := h.WorldsUC.Cell(c, worldview.CellRequest{ID: worldID(ctx), X: x, Y: y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getRegion(c context.Context, ctx *app.RequestContext) {
	x, err := queryInt(ctx, "x")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	y, err := queryInt(ctx, "y")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	radius, err := queryInt(ctx, "radius")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	resp, err := h.WorldsUC.Region(c, worldview.RegionRequest{
		ID:     worldID(ctx),
		X:      x,
		Y:      y,
		Radius: radius,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) exportMap(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ExportUC.Execute(c, export.Request{
		WorldID: worldID(ctx),
		Format:  string(ctx.Query("format")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(consts.StatusOK, resp.ContentType, resp.Data)
}

func (h Handler) runAutomaton(c context.Context, ctx *app.RequestContext) {
	var body automatonRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SimulateUC.Execute(c, simulate.Request{
		Width:       body.Width,
		Height:      body.Height,
		Rule:        body.Rule,
		FillDensity: body.FillDensity,
		Steps:       body.Steps,
		Seed:        body.Seed,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func worldID(ctx *app.RequestContext) string {
	return strings.TrimSpace(string(ctx.Param("id")))
}

func queryInt(ctx *app.RequestContext, key string) (int, error) {
	raw := string(ctx.Query(key))
	if raw == "" {
		return 0, errors.New("missing query parameter " + key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("query parameter " + key + " must be an integer")
	}
	return v, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrUnsupportedFormat):
		writeErrorBody(ctx, consts.StatusBadRequest, "unsupported_format", err.Error())
	case errors.Is(err, generate.ErrInvalidRequest),
		errors.Is(err, worldview.ErrInvalidRequest),
		errors.Is(err, export.ErrInvalidRequest),
		errors.Is(err, simulate.ErrInvalidRequest),
		errors.Is(err, terrain.ErrInvalidOptions),
		errors.Is(err, terrain.ErrInvalidDimensions):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
