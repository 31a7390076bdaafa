package request

import (
	"errors"
	"testing"
)

func TestBulkNegotiationRequest_ResolveDiscountType(t *testing.T) {
	cases := []struct {
		name    string
		req     BulkNegotiationRequest
		want    string
		wantErr error
	}{
		{name: "omitted defaults to none", req: BulkNegotiationRequest{}, want: "none"},
		{name: "explicit none", req: BulkNegotiationRequest{DiscountType: "none"}, want: "none"},
		{name: "mixed case is normalized", req: BulkNegotiationRequest{DiscountType: " Percentage ", DiscountValue: 10}, want: "percentage"},
		{name: "fixed", req: BulkNegotiationRequest{DiscountType: "fixed", DiscountValue: 50}, want: "fixed"},
		{name: "unknown type", req: BulkNegotiationRequest{DiscountType: "bogus"}, wantErr: ErrInvalidDiscountType},
		{name: "negative value", req: BulkNegotiationRequest{DiscountType: "fixed", DiscountValue: -1}, wantErr: ErrInvalidDiscount},
		{name: "percentage above 100", req: BulkNegotiationRequest{DiscountType: "percentage", DiscountValue: 101}, wantErr: ErrInvalidDiscount},
		{name: "none ignores value", req: BulkNegotiationRequest{DiscountType: "none", DiscountValue: -5}, want: "none"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.ResolveDiscountType()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
