package handlers

import (
	"errors"
	"log"
	"net/http"

	request "alteapay/internal/adapter/http/dto/request"
	response "alteapay/internal/adapter/http/dto/response"
	"alteapay/internal/usecase"
	"alteapay/pkg"

	"github.com/gin-gonic/gin"
)

// NegotiationHandler handles HTTP requests for bulk negotiation sending.

type NegotiationHandler struct {
	usecase usecase.IBulkNegotiationUseCase
}

func NewNegotiationHandler(uc usecase.IBulkNegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{usecase: uc}
}

// SendBulkNegotiations dispatches negotiations for the selected source records.
//
// Per-record failures do not fail the request: the batch always answers 200
// with a per-record report, and the caller inspects sent/failed counts.
func (h *NegotiationHandler) SendBulkNegotiations(c *gin.Context) {
	var payload request.BulkNegotiationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[negotiation][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	discountType, err := payload.ResolveDiscountType()
	if err != nil {
		log.Printf("[negotiation][handler] invalid discount company_id=%s err=%v", payload.CompanyID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Invalid discount configuration", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[negotiation][handler] bulk start company_id=%s records=%d", payload.CompanyID, len(payload.SourceRecordIDs))

	report, err := h.usecase.SendBulkNegotiations(c.Request.Context(), usecase.BulkNegotiationParams{
		CompanyID:            payload.CompanyID,
		SourceRecordIDs:      payload.SourceRecordIDs,
		DiscountType:         usecase.DiscountType(discountType),
		DiscountValue:        payload.DiscountValue,
		PaymentMethods:       payload.PaymentMethods,
		NotificationChannels: payload.NotificationChannels,
		UserID:               payload.UserID,
		AttendantName:        payload.AttendantName,
	})
	if err != nil {
		log.Printf("[negotiation][handler] bulk failed company_id=%s err=%v", payload.CompanyID, err)
		appErr := mapNegotiationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[negotiation][handler] bulk done company_id=%s sent=%d failed=%d", payload.CompanyID, report.Sent, report.Failed)

	c.JSON(http.StatusOK, response.FromBulkNegotiationReport(report))
}

func mapNegotiationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCompanyID), errors.Is(err, usecase.ErrNoRecordsSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
