// Package api serves simulations over HTTP with fasthttp.
package api

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rgehrsitz/eisim/internal/config"
	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/rgehrsitz/eisim/internal/i18n"
	"github.com/rgehrsitz/eisim/internal/output"
)

// Server routes the JSON API. Reporters are built once per language and
// shared by all requests.
type Server struct {
	Thresholds      domain.Thresholds
	DefaultLanguage string
	Version         string

	logger    *zap.Logger
	parser    *config.InputParser
	reporters map[string]*output.Reporter
}

// NewServer creates a server over th answering in lang unless a request
// asks otherwise.
func NewServer(th domain.Thresholds, lang string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		Thresholds:      th,
		DefaultLanguage: i18n.MatchLanguage(lang),
		logger:          logger,
		parser:          config.NewInputParser(),
		reporters:       make(map[string]*output.Reporter),
	}
	for _, l := range []string{i18n.French, i18n.English} {
		r := output.NewReporter(th, l)
		r.Engine.SetLogger(logger.Sugar())
		s.reporters[l] = r
	}
	return s
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler: s.Handler(),
		Name:    "eisim",
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server starting", zap.String("address", addr))
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("API server shutting down")
		return srv.Shutdown()
	}
}

// Handler returns the routing handler wrapped with request logging.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.logRequests(s.route)
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/simulate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleSimulate(ctx)
	case "/api/thresholds":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleThresholds(ctx)
	case "/api/regimes":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleRegimes(ctx)
	case "/api/health":
		s.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) logRequests(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		s.logger.Info("request",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	var req SimulateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	input := req.SimulationInput
	input.Configuration = config.WithDefaultRegimes(input.Configuration)
	if err := s.parser.ValidateInput(input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	lang := s.language(ctx, req.Language)
	report := s.reporters[lang].Build(req.Name, input)

	s.logger.Debug("simulation computed",
		zap.String("activity", string(input.ActivityType)),
		zap.String("tax_regime", string(input.TaxRegime)),
		zap.String("social_regime", string(input.SocialRegime)),
		zap.Int("alerts", len(report.Alerts)),
	)

	writeJSON(ctx, fasthttp.StatusOK, SimulateResponse{Language: lang, Report: report})
}

func (s *Server) handleThresholds(ctx *fasthttp.RequestCtx) {
	activity, ok := s.activityParam(ctx, true)
	if !ok {
		return
	}

	lang := s.language(ctx, "")
	reporter := s.reporters[lang]
	writeJSON(ctx, fasthttp.StatusOK, ThresholdsResponse{
		ActivityType: activity,
		Language:     lang,
		DataYear:     s.Thresholds.Metadata.DataYear,
		Displays:     reporter.Thresholds(activity),
		Summary:      reporter.Formatter.Summary(activity),
	})
}

func (s *Server) handleRegimes(ctx *fasthttp.RequestCtx) {
	activity, ok := s.activityParam(ctx, false)
	if !ok {
		return
	}

	lang := s.language(ctx, "")
	tr := s.reporters[lang].Translator
	label := func(prefix, code string) Option {
		return Option{Code: code, Label: tr.Translate(prefix+code, nil)}
	}

	resp := RegimesResponse{Language: lang}
	for _, a := range domain.AllActivityTypes {
		if activity != "" && a != activity {
			continue
		}
		entry := ActivityRegimes{Option: label("activity.", string(a))}
		for _, r := range domain.AvailableTaxRegimesFor(a) {
			entry.TaxRegimes = append(entry.TaxRegimes, label("tax_regime.", string(r)))
		}
		resp.Activities = append(resp.Activities, entry)
	}
	for _, r := range domain.AllSocialRegimes {
		resp.SocialRegimes = append(resp.SocialRegimes, label("social_regime.", string(r)))
	}
	for _, r := range domain.AllVatRegimes {
		resp.VatRegimes = append(resp.VatRegimes, label("vat_regime.", string(r)))
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, HealthResponse{
		Status:   "ok",
		Version:  s.Version,
		DataYear: s.Thresholds.Metadata.DataYear,
	})
}

// activityParam reads the activity query argument. A malformed value, or a
// missing one when required, has already been answered with 400 when ok is
// false.
func (s *Server) activityParam(ctx *fasthttp.RequestCtx, required bool) (domain.BusinessActivityType, bool) {
	raw := string(ctx.QueryArgs().Peek("activity"))
	if raw == "" {
		if required {
			writeError(ctx, fasthttp.StatusBadRequest, "activity parameter is required")
			return "", false
		}
		return "", true
	}
	activity, err := domain.ParseActivityType(raw)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return "", false
	}
	return activity, true
}

// language picks the response language: the explicit value, then the lang
// query argument, then Accept-Language, then the server default.
func (s *Server) language(ctx *fasthttp.RequestCtx, explicit string) string {
	if explicit != "" {
		return i18n.MatchLanguage(explicit)
	}
	if q := ctx.QueryArgs().Peek("lang"); len(q) > 0 {
		return i18n.MatchLanguage(string(q))
	}
	if h := ctx.Request.Header.Peek(fasthttp.HeaderAcceptLanguage); len(h) > 0 {
		return i18n.DetectLanguage(string(h))
	}
	return s.DefaultLanguage
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Status: status, Message: "failed to encode response"})
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
