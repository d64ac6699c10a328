package dto

import (
	"testing"

	model "decofilm_backend/internals/features/quotes/model"
)

func TestTotalIsSumOfCostParts(t *testing.T) {
	tests := []struct {
		name             string
		material, labor  int64
		fees             int64
		want             int64
	}{
		{"all zero", 0, 0, 0, 0},
		{"typical quote", 1_200_000, 800_000, 150_000, 2_150_000},
		{"material only", 500_000, 0, 0, 500_000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := QuoteRequest{
				QuoteMaterialCost:   tc.material,
				QuoteLaborCost:      tc.labor,
				QuoteAdditionalFees: tc.fees,
			}
			if got := r.Total(); got != tc.want {
				t.Fatalf("Total() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestToModelNeverTrustsClientTotal(t *testing.T) {
	r := QuoteRequest{
		QuoteCustomerName:   "김민수",
		QuotePhone:          "010-1234-5678",
		QuoteMaterialCost:   300_000,
		QuoteLaborCost:      200_000,
		QuoteAdditionalFees: 50_000,
	}

	q, err := r.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if q.QuoteTotalAmount != 550_000 {
		t.Fatalf("QuoteTotalAmount = %d, want 550000", q.QuoteTotalAmount)
	}
}

func TestApplyToRecomputesTotal(t *testing.T) {
	q := &model.Quote{
		QuoteMaterialCost: 100,
		QuoteLaborCost:    100,
		QuoteTotalAmount:  999_999, // stale figure from an earlier save
	}

	r := QuoteRequest{
		QuoteCustomerName:   "이서연",
		QuotePhone:          "010-9876-5432",
		QuoteMaterialCost:   400_000,
		QuoteLaborCost:      350_000,
		QuoteAdditionalFees: 0,
	}
	if err := r.ApplyTo(q); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if q.QuoteTotalAmount != 750_000 {
		t.Fatalf("QuoteTotalAmount = %d, want 750000", q.QuoteTotalAmount)
	}
}

func TestLineItemsRoundTrip(t *testing.T) {
	r := QuoteRequest{
		QuoteCustomerName: "박지훈",
		QuotePhone:        "010-5555-1111",
		QuoteLineItems: []model.QuoteLineItem{
			{Space: "거실", Material: "무광 화이트", Area: "12평", Amount: 360_000},
		},
	}

	q, err := r.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}

	resp := FromModel(q)
	if len(resp.QuoteLineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(resp.QuoteLineItems))
	}
	if resp.QuoteLineItems[0].Space != "거실" || resp.QuoteLineItems[0].Amount != 360_000 {
		t.Fatalf("line item round trip = %+v", resp.QuoteLineItems[0])
	}
}
