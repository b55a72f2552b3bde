package report

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitProfitEvenDivision(t *testing.T) {
	input := SplitInput{
		Revenue: decimal.NewFromInt(10000),
		PartnerAItems: []SplitLineItem{
			{Description: "camera rental", Amount: decimal.NewFromInt(1200)},
			{Description: "travel", Amount: decimal.NewFromInt(300)},
		},
		PartnerBItems: []SplitLineItem{
			{Description: "editing software", Amount: decimal.NewFromInt(500)},
		},
	}

	result, err := SplitProfit(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !result.PartnerAExpense.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected partner A expense 1500, got %s", result.PartnerAExpense)
	}
	if !result.PartnerBExpense.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected partner B expense 500, got %s", result.PartnerBExpense)
	}
	if !result.NetProfit.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("expected net 8000, got %s", result.NetProfit)
	}
	if !result.ShareEach.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected share 4000, got %s", result.ShareEach)
	}
}

func TestSplitProfitNegativeNetIsALoss(t *testing.T) {
	input := SplitInput{
		Revenue:       decimal.NewFromInt(100),
		PartnerAItems: []SplitLineItem{{Description: "venue", Amount: decimal.NewFromInt(300)}},
	}

	result, err := SplitProfit(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.NetProfit.Equal(decimal.NewFromInt(-200)) {
		t.Fatalf("expected net -200, got %s", result.NetProfit)
	}
	if !result.ShareEach.Equal(decimal.NewFromInt(-100)) {
		t.Fatalf("expected share -100, got %s", result.ShareEach)
	}
}

func TestSplitProfitOddCents(t *testing.T) {
	revenue, _ := decimal.NewFromString("100.01")
	result, err := SplitProfit(SplitInput{Revenue: revenue})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want, _ := decimal.NewFromString("50.005")
	if !result.ShareEach.Equal(want) {
		t.Fatalf("expected exact half 50.005, got %s", result.ShareEach)
	}
}

func TestSplitProfitRejectsNegativeInputs(t *testing.T) {
	_, err := SplitProfit(SplitInput{Revenue: decimal.NewFromInt(-1)})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for revenue, got %v", err)
	}

	_, err = SplitProfit(SplitInput{
		Revenue:       decimal.NewFromInt(100),
		PartnerBItems: []SplitLineItem{{Amount: decimal.NewFromInt(-5)}},
	})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for line item, got %v", err)
	}
}
