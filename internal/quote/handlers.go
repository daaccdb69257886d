package quote

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/minpaku-dev/pricing-api/internal/availability"
	"github.com/minpaku-dev/pricing-api/internal/common"
	"github.com/minpaku-dev/pricing-api/internal/obs"
	"github.com/minpaku-dev/pricing-api/internal/property"
	"github.com/minpaku-dev/pricing-api/internal/stay"
)

// CacheHeader reports whether a quote came from the response cache.
const CacheHeader = "X-Quote-Cache"

// Handler exposes the quote endpoints.
type Handler struct {
	Store           property.Store
	Oracle          availability.Oracle
	Cache           *Cache
	Hooks           Hooks
	Validator       *validator.Validate
	Logger          zerolog.Logger
	DefaultCurrency string
	Now             func() time.Time
}

type quoteRequest struct {
	PropertyID int64  `json:"property_id" validate:"omitempty,gt=0"`
	Checkin    string `json:"checkin" validate:"required"`
	Checkout   string `json:"checkout" validate:"required"`
	Adults     int    `json:"adults" validate:"gte=0"`
	Children   int    `json:"children" validate:"gte=0"`
	Infants    int    `json:"infants" validate:"gte=0"`
	Currency   string `json:"currency" validate:"omitempty,alpha,len=3"`
}

// Post handles POST /api/v1/quote with the property id in the body.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	if payload.PropertyID <= 0 {
		common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", []string{"invalid property id"})
		return
	}
	h.serve(w, r, payload, payload.PropertyID)
}

// PostForProperty handles POST /api/v1/properties/{propertyID}/quote.
func (h *Handler) PostForProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil || propertyID <= 0 {
		common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", []string{"invalid property id"})
		return
	}
	payload, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.serve(w, r, payload, propertyID)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (quoteRequest, bool) {
	var payload quoteRequest
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "bad_request", "malformed request body", nil)
		return payload, false
	}
	if h.Validator != nil {
		if err := h.Validator.Struct(payload); err != nil {
			var verrs validator.ValidationErrors
			details := []string{}
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					details = append(details, strings.ToLower(fe.Field())+" is invalid")
				}
			}
			common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", details)
			return payload, false
		}
	}
	return payload, true
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, payload quoteRequest, propertyID int64) {
	ctx := r.Context()

	checkin, err := stay.ParseDate(payload.Checkin)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", []string{"invalid check-in date"})
		return
	}
	checkout, err := stay.ParseDate(payload.Checkout)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", []string{"invalid check-out date"})
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(payload.Currency))
	if currency == "" {
		currency = h.DefaultCurrency
	}
	req := stay.New(stay.Params{
		PropertyID: propertyID,
		Checkin:    checkin,
		Checkout:   checkout,
		Adults:     payload.Adults,
		Children:   payload.Children,
		Infants:    payload.Infants,
		Currency:   currency,
	})

	if cached, ok := h.Cache.Get(ctx, req); ok {
		h.countCache("hit")
		w.Header().Set(CacheHeader, "HIT")
		common.JSON(w, http.StatusOK, map[string]any{"data": cached})
		return
	}
	h.countCache("miss")

	cfg, err := h.Store.Load(ctx, propertyID)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			h.countResult(obs.ResultConfigurationError)
			common.JSONError(w, http.StatusNotFound, "property_not_found", "property not found", nil)
			return
		}
		h.countResult(obs.ResultConfigurationError)
		h.Logger.Error().Err(err).Int64("property_id", propertyID).Msg("load property configuration")
		common.JSONError(w, http.StatusInternalServerError, "configuration_error", "property configuration could not be loaded", nil)
		return
	}

	engine := &Engine{
		Request:  req,
		Property: cfg,
		Oracle:   h.Oracle,
		Hooks:    h.Hooks,
		Logger:   h.Logger,
		Now:      h.Now,
	}

	start := time.Now()
	q, err := engine.Calculate(ctx)
	if obs.QuoteCalcDuration != nil {
		obs.QuoteCalcDuration.Observe(obs.DurationMillis(time.Since(start)))
	}
	if err != nil {
		h.writeCalculateError(w, err)
		return
	}
	h.countResult(obs.ResultPriced)

	h.Cache.Set(ctx, req, q)
	w.Header().Set(CacheHeader, "MISS")
	common.JSON(w, http.StatusOK, map[string]any{"data": q})
}

func (h *Handler) writeCalculateError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		h.countResult(obs.ResultValidationError)
		common.JSONError(w, http.StatusBadRequest, "validation_error", "invalid stay request", verr.Violations)
		return
	}
	var cerr *ConstraintError
	if errors.As(err, &cerr) {
		h.countResult(obs.ResultConstraintError)
		common.JSONError(w, http.StatusUnprocessableEntity, "constraint_violation", "booking constraints violated", cerr.Violations)
		return
	}
	var aerr *AvailabilityError
	if errors.As(err, &aerr) {
		h.countResult(obs.ResultAvailabilityError)
		if aerr.Err != nil {
			h.Logger.Error().Err(aerr.Err).Msg("availability lookup failed")
			common.JSONError(w, http.StatusServiceUnavailable, "availability_unavailable", "availability could not be confirmed", nil)
			return
		}
		common.JSONError(w, http.StatusConflict, "unavailable", "requested dates are not available", aerr.Dates)
		return
	}
	h.countResult(obs.ResultInternalError)
	h.Logger.Error().Err(err).Msg("quote calculation failed")
	common.JSONError(w, http.StatusInternalServerError, "internal", "quote calculation failed", nil)
}

func (h *Handler) countResult(result string) {
	if obs.QuoteCalculationsTotal != nil {
		obs.QuoteCalculationsTotal.WithLabelValues(result).Inc()
	}
}

func (h *Handler) countCache(result string) {
	if obs.QuoteCacheTotal != nil {
		obs.QuoteCacheTotal.WithLabelValues(result).Inc()
	}
}
