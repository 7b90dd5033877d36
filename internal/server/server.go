// Package server exposes the calculation engine over HTTP. It is the input
// boundary only: a JSON household in, a JSON summary out. Form rendering
// and localization belong to the caller.
package server

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"revdisp/internal/calculation"
	"revdisp/internal/config"
	"revdisp/internal/domain"
	"revdisp/internal/params"
)

// Server routes calculation requests to year-bound engines.
type Server struct {
	store  *params.Store
	logger *zap.Logger
}

// New creates a server backed by the given parameter store.
func New(store *params.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: store, logger: logger}
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("server listening", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.route)
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		s.HandleCalculation(ctx)
	case "/years":
		s.HandleYears(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// HandleYears lists the supported fiscal years.
func (s *Server) HandleYears(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string][]int{"years": s.store.SupportedYears()})
}

// HandleCalculation evaluates one household for one fiscal year.
func (s *Server) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "use POST")
		return
	}

	var req config.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	engine, err := calculation.NewEngine(req.Year, s.store, s.logger)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedYear) {
			s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("engine construction failed", zap.Error(err))
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	summary, err := engine.Calculate(&req.Household)
	if err != nil {
		var invalid *domain.InvalidHouseholdError
		if errors.As(err, &invalid) {
			s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("calculation failed", zap.Error(err))
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, summary)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	s.writeJSON(ctx, status, map[string]string{"error": msg})
}
