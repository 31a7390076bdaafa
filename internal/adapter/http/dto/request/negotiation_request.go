package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDiscountType = errors.New("invalid discount type")
	ErrInvalidDiscount     = errors.New("invalid discount value")
)

// BulkNegotiationRequest is the batch payload sent by the operator console.
type BulkNegotiationRequest struct {
	CompanyID            string   `json:"company_id" binding:"required"`
	SourceRecordIDs      []string `json:"source_record_ids" binding:"required"`
	DiscountType         string   `json:"discount_type"`
	DiscountValue        float64  `json:"discount_value"`
	PaymentMethods       []string `json:"payment_methods"`
	NotificationChannels []string `json:"notification_channels"`
	UserID               string   `json:"user_id"`
	AttendantName        string   `json:"attendant_name"`
}

// ResolveDiscountType normalizes the discount type, defaulting to "none" when
// the field is omitted.
func (r BulkNegotiationRequest) ResolveDiscountType() (string, error) {
	dt := strings.TrimSpace(strings.ToLower(r.DiscountType))
	switch dt {
	case "":
		return "none", nil
	case "none", "percentage", "fixed":
		break
	default:
		return "", ErrInvalidDiscountType
	}

	if dt != "none" && r.DiscountValue < 0 {
		return "", ErrInvalidDiscount
	}
	if dt == "percentage" && r.DiscountValue > 100 {
		return "", ErrInvalidDiscount
	}
	return dt, nil
}
