package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "alteapay/internal/adapter/http/dto/request"
	response "alteapay/internal/adapter/http/dto/response"
	"alteapay/internal/usecase"
	"alteapay/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler handles HTTP requests for payment status synchronization.

type SyncHandler struct {
	usecase usecase.IPaymentSyncUseCase
}

func NewSyncHandler(uc usecase.IPaymentSyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// SyncPayments pulls charge status from the payment provider into local
// agreements. An empty body syncs everything pending; company_id scopes the
// run and enables stuck-record repair; agreement_id forces one agreement.
func (h *SyncHandler) SyncPayments(c *gin.Context) {
	var payload request.PaymentSyncRequest
	// An absent body is a valid "sync everything" request.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[sync][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[sync][handler] sync start company_id=%s agreement_id=%s", payload.CompanyID, payload.AgreementID)

	report, err := h.usecase.SyncPayments(c.Request.Context(), usecase.SyncFilters{
		CompanyID:   payload.CompanyID,
		AgreementID: payload.AgreementID,
	})
	if err != nil {
		log.Printf("[sync][handler] sync failed company_id=%s err=%v", payload.CompanyID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] sync done total=%d synced=%d updated=%d skipped=%d", report.Total, report.Synced, report.Updated, report.Skipped)

	c.JSON(http.StatusOK, response.FromSyncReport(report))
}

// SyncHealth answers the poller's liveness probe on the sync endpoint.
func (h *SyncHandler) SyncHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "payment-sync",
	})
}
