package report

import "github.com/shopspring/decimal"

// SplitLineItem is one expense line claimed by a partner in the
// two-partner profit division.
type SplitLineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type SplitInput struct {
	Revenue       decimal.Decimal `json:"revenue"`
	PartnerAItems []SplitLineItem `json:"partner_a_items"`
	PartnerBItems []SplitLineItem `json:"partner_b_items"`
}

type SplitResult struct {
	Revenue         decimal.Decimal `json:"revenue"`
	PartnerAExpense decimal.Decimal `json:"partner_a_expense"`
	PartnerBExpense decimal.Decimal `json:"partner_b_expense"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	ShareEach       decimal.Decimal `json:"share_each"`
}

var two = decimal.NewFromInt(2)

// SplitProfit sums each partner's expense lines, subtracts both from the
// revenue and divides the remainder equally. Net profit may come out
// negative; callers render that as a loss, not an error.
func SplitProfit(input SplitInput) (SplitResult, error) {
	if input.Revenue.IsNegative() {
		return SplitResult{}, ErrInvalidEvent
	}

	partnerA, err := sumLineItems(input.PartnerAItems)
	if err != nil {
		return SplitResult{}, err
	}
	partnerB, err := sumLineItems(input.PartnerBItems)
	if err != nil {
		return SplitResult{}, err
	}

	net := input.Revenue.Sub(partnerA).Sub(partnerB)
	return SplitResult{
		Revenue:         input.Revenue,
		PartnerAExpense: partnerA,
		PartnerBExpense: partnerB,
		NetProfit:       net,
		ShareEach:       net.Div(two),
	}, nil
}

func sumLineItems(items []SplitLineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Amount.IsNegative() {
			return decimal.Zero, ErrInvalidEvent
		}
		total = total.Add(item.Amount)
	}
	return total, nil
}
