package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	reqdto "booking-intake/internal/handler/dto/request"
	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Solicitud inválida"
	msgMissingData    = "Por favor corrige los errores antes de continuar."
	msgDispatchFailed = "Ocurrió un error. Por favor intenta por WhatsApp."
	msgUnknownField   = "Campo desconocido"
	msgInternal       = "Internal server error"
	msgRateLimited    = "Espera %d minutos antes de intentar nuevamente."
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(commands commands.BookingCommands, queries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Validate booking draft
// @Description Run every field rule, or only the one named by ?field=
// @Tags bookings
// @Accept json
// @Produce json
// @Param field query string false "name|email|phone|dates|carType|message"
// @Param request body reqdto.BookingRequest true "Booking draft"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/validate [post]
func (h *BookingHandler) Validate(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.queries.Validate(c.Request.Context(), draft, c.Query("field"))
	if err != nil {
		if errors.Is(err, queries.ErrUnknownField) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgUnknownField, gin.H{"field": c.Query("field")})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Quote a rental
// @Description Day count and price breakdown; price is null when the vehicle has no usable price
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Vehicle and dates"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.queries.Quote(c.Request.Context(), draft)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Throttle status
// @Description Current submission allowance for the calling browser
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.ThrottleResponse
// @Router /api/bookings/throttle [get]
func (h *BookingHandler) ThrottleStatus(c *gin.Context) {
	decision := h.queries.ThrottleStatus(c.Request.Context(), signalsFromRequest(c))
	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}

// @Summary Submit booking
// @Description Validate, check the throttle, and email the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking draft"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.commands.Submit(c.Request.Context(), draft, signalsFromRequest(c))
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary WhatsApp deep link
// @Description Validate and build a prefilled messaging link. Not throttled.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking draft"
// @Success 200 {object} resdto.WhatsAppResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/whatsapp [post]
func (h *BookingHandler) WhatsApp(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.commands.WhatsApp(c.Request.Context(), draft)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWhatsAppResult(result))
}

// @Summary Reset throttle
// @Description Forget the calling browser's attempts (debug mode only)
// @Tags bookings
// @Success 204
// @Router /api/bookings/throttle [delete]
func (h *BookingHandler) ResetThrottle(c *gin.Context) {
	if err := h.commands.ResetThrottle(c.Request.Context(), signalsFromRequest(c)); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) abortWithCommandError(c *gin.Context, err error) {
	var (
		verr *commands.ValidationError
		rerr *commands.RateLimitedError
	)
	switch {
	case errors.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgMissingData, verr.Result.Errors)
	case errors.As(err, &rerr):
		minutes := rerr.Decision.RemainingTimeMinutes
		c.Header("Retry-After", strconv.Itoa(minutes*60))
		httperr.AbortWithError(c, http.StatusTooManyRequests, err,
			fmt.Sprintf(msgRateLimited, minutes),
			resdto.FromDecision(rerr.Decision))
	case errs.Is(err, errs.ErrDispatchFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, msgDispatchFailed, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}
