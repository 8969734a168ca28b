package server

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/trace"

	"kanjize-hq/kanjize/pkg/config"
	"kanjize-hq/kanjize/pkg/kanjize"
	"kanjize-hq/kanjize/pkg/server/middleware"
	"kanjize-hq/kanjize/pkg/server/types"
	"kanjize-hq/kanjize/pkg/telemetry/logging"
	"kanjize-hq/kanjize/pkg/telemetry/metrics"
	"kanjize-hq/kanjize/pkg/telemetry/tracing"
)

// Query parameters.
const (
	paramNumber           = "number"
	paramKanji            = "kanji"
	paramStyle            = "style"
	paramZero             = "zero"
	paramDaiji            = "daiji"
	paramCompactThousands = "compact_thousands"
	paramExact            = "exact"
)

// handleKanji serves GET /v1/kanji?number=.
func (s *Server) handleKanji(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithOperation(r.Context(), metrics.DirectionToKanji)
	d := s.defaults.Load()
	query := r.URL.Query()

	raw, errResp := requiredParam(query, paramNumber, d.maxInputRunes)
	if errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		middleware.WriteError(w, types.NewInvalidRequestError(
			fmt.Sprintf("%s must be a decimal integer", paramNumber), paramNumber))
		return
	}

	cfg, errResp := requestConfiguration(d.raw, query)
	if errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}

	if errResp := deadlineExceeded(ctx); errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}

	ctx, span := s.tracer.Start(ctx, "kanjize.NumberToKanji", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	runes := utf8.RuneCountInString(raw)
	tracing.SetConversionAttributes(span, metrics.DirectionToKanji, string(cfg.Style()), cfg.UseDaiji(), runes)

	start := time.Now()
	kanji, err := kanjize.NumberToKanji(n, cfg)
	s.recordConversion(span, metrics.DirectionToKanji, string(cfg.Style()), time.Since(start), runes, err)
	if err != nil {
		s.logger.DebugContext(ctx, "conversion rejected", "number", n.String(), "error", err)
		middleware.WriteError(w, types.FromError(err, paramNumber))
		return
	}

	middleware.WriteJSON(w, http.StatusOK, types.KanjiResponse{
		Number: n.String(),
		Kanji:  kanji,
		Style:  string(cfg.Style()),
		Daiji:  cfg.UseDaiji(),
	})
}

// handleNumber serves GET /v1/number?kanji=.
func (s *Server) handleNumber(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithOperation(r.Context(), metrics.DirectionToNumber)
	d := s.defaults.Load()
	query := r.URL.Query()

	raw, errResp := requiredParam(query, paramKanji, d.maxInputRunes)
	if errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}
	exact, errResp := boolParam(query, paramExact, false)
	if errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}

	if errResp := deadlineExceeded(ctx); errResp != nil {
		middleware.WriteError(w, errResp)
		return
	}

	ctx, span := s.tracer.Start(ctx, "kanjize.KanjiToNumber", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	runes := utf8.RuneCountInString(raw)
	tracing.SetConversionAttributes(span, metrics.DirectionToNumber, "", false, runes)

	resp := types.NumberResponse{Kanji: raw}
	start := time.Now()
	var err error
	if exact {
		var rat *big.Rat
		if rat, err = kanjize.KanjiToRat(raw); err == nil {
			resp.Rational = rat.RatString()
			if rat.IsInt() {
				resp.Number = rat.Num().String()
			}
		}
	} else {
		var n *big.Int
		if n, err = kanjize.KanjiToNumber(raw); err == nil {
			resp.Number = n.String()
		}
	}
	s.recordConversion(span, metrics.DirectionToNumber, "", time.Since(start), runes, err)
	if err != nil {
		s.logger.DebugContext(ctx, "numeral rejected", "kanji", raw, "error", err)
		middleware.WriteError(w, types.FromError(err, paramKanji))
		return
	}

	middleware.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	middleware.WriteError(w, types.NewErrorResponse(types.ErrorTypeMethodNotAllowed, "",
		fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path), ""))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	middleware.WriteError(w, types.NewErrorResponse(types.ErrorTypeNotFound, "",
		fmt.Sprintf("no route for %s", r.URL.Path), ""))
}

// recordConversion records the outcome of a conversion in metrics and on
// the span.
func (s *Server) recordConversion(span trace.Span, direction, style string, duration time.Duration, runes int, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
		if reason := kanjize.ReasonOf(err); reason != "" {
			s.metrics.RecordParseError(string(reason))
			tracing.SetReason(span, string(reason))
		}
	}
	s.metrics.RecordConversion(direction, style, status, duration, runes)
	tracing.SetStatus(span, err)
}

// requiredParam returns a non-empty query parameter no longer than
// maxRunes.
func requiredParam(query url.Values, name string, maxRunes int) (string, *types.ErrorResponse) {
	v := query.Get(name)
	if v == "" {
		return "", types.NewInvalidRequestError(
			fmt.Sprintf("missing required parameter: %s", name), name)
	}
	if !utf8.ValidString(v) {
		return "", types.NewInvalidRequestError(
			fmt.Sprintf("%s is not valid UTF-8", name), name)
	}
	if utf8.RuneCountInString(v) > maxRunes {
		return "", types.NewInvalidRequestError(
			fmt.Sprintf("%s exceeds the maximum length of %d characters", name, maxRunes), name)
	}
	return v, nil
}

func boolParam(query url.Values, name string, def bool) (bool, *types.ErrorResponse) {
	v := query.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, types.NewInvalidRequestError(
			fmt.Sprintf("%s must be a boolean", name), name)
	}
	return b, nil
}

// requestConfiguration overlays the query's options on the configured
// defaults. Options are applied to the raw settings so that a zero glyph
// left unset in both is derived from the requested style.
func requestConfiguration(base config.KanjizeConfig, query url.Values) (kanjize.Configuration, *types.ErrorResponse) {
	k := base
	if v := query.Get(paramStyle); v != "" {
		k.Style = v
	}
	if v := query.Get(paramZero); v != "" {
		k.Zero = v
	}

	daiji, errResp := boolParam(query, paramDaiji, k.UseDaiji)
	if errResp != nil {
		return kanjize.Configuration{}, errResp
	}
	k.UseDaiji = daiji

	compactDefault := config.DefaultCompactThousands
	if k.CompactThousands != nil {
		compactDefault = *k.CompactThousands
	}
	compact, errResp := boolParam(query, paramCompactThousands, compactDefault)
	if errResp != nil {
		return kanjize.Configuration{}, errResp
	}
	k.CompactThousands = &compact

	cfg, err := k.Configuration()
	if err != nil {
		return kanjize.Configuration{}, types.FromError(err, "")
	}
	return cfg, nil
}

// deadlineExceeded reports a gateway timeout once the request deadline set
// by the timeout middleware has passed.
func deadlineExceeded(ctx context.Context) *types.ErrorResponse {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return types.NewGatewayTimeoutError("request deadline exceeded")
		}
		return types.NewServerError("request cancelled")
	}
	return nil
}
