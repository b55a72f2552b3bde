package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func income(amount int64, on time.Time) MonetaryEvent {
	return MonetaryEvent{Amount: decimal.NewFromInt(amount), OccurredOn: on, Kind: KindIncome}
}

func expense(amount int64, on time.Time) MonetaryEvent {
	return MonetaryEvent{Amount: decimal.NewFromInt(amount), OccurredOn: on, Kind: KindExpense}
}

func mustAggregate(t *testing.T, events, pending []MonetaryEvent, window ReportWindow, now time.Time) AggregationResult {
	t.Helper()
	result, err := Aggregate(events, pending, window, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return result
}

func bucketByLabel(t *testing.T, series []Bucket, label string) Bucket {
	t.Helper()
	for _, bucket := range series {
		if bucket.Label == label {
			return bucket
		}
	}
	t.Fatalf("no bucket labeled %q in %+v", label, series)
	return Bucket{}
}

func TestYearWindowScenario(t *testing.T) {
	now := date(2024, time.June, 15)
	events := []MonetaryEvent{
		income(1000, date(2024, time.March, 10)),
		expense(400, date(2024, time.March, 12)),
		income(500, date(2023, time.December, 1)),
	}

	result := mustAggregate(t, events, nil, YearWindow(), now)

	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected income 1000, got %s", result.Summary.TotalIncome)
	}
	if !result.Summary.TotalExpense.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected expense 400, got %s", result.Summary.TotalExpense)
	}
	if !result.Summary.NetProfit.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected net 600, got %s", result.Summary.NetProfit)
	}

	if len(result.Series) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(result.Series))
	}

	march := bucketByLabel(t, result.Series, "Mar")
	if !march.Income.Equal(decimal.NewFromInt(1000)) || !march.Expense.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected March bucket: %+v", march)
	}

	for _, bucket := range result.Series {
		if bucket.Label == "Mar" {
			continue
		}
		if !bucket.Income.IsZero() || !bucket.Expense.IsZero() {
			t.Fatalf("expected zero bucket %q, got %+v", bucket.Label, bucket)
		}
	}
}

func TestYearWindowLabels(t *testing.T) {
	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	result := mustAggregate(t, nil, nil, YearWindow(), date(2024, time.June, 15))

	for i, bucket := range result.Series {
		if bucket.Label != want[i] {
			t.Fatalf("bucket %d: expected label %q, got %q", i, want[i], bucket.Label)
		}
	}
}

func TestMonthWindowBucketPerDay(t *testing.T) {
	now := date(2024, time.February, 10)
	events := []MonetaryEvent{
		income(250, date(2024, time.February, 3)),
		expense(40, date(2024, time.February, 29)),
		income(999, date(2024, time.January, 3)),
	}

	result := mustAggregate(t, events, nil, MonthWindow(), now)

	if len(result.Series) != 29 {
		t.Fatalf("expected 29 buckets for Feb 2024, got %d", len(result.Series))
	}
	if result.Series[0].Label != "1" || result.Series[28].Label != "29" {
		t.Fatalf("unexpected labels: first=%q last=%q", result.Series[0].Label, result.Series[28].Label)
	}

	day3 := bucketByLabel(t, result.Series, "3")
	if !day3.Income.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected day 3 income 250, got %s", day3.Income)
	}
	day29 := bucketByLabel(t, result.Series, "29")
	if !day29.Expense.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected day 29 expense 40, got %s", day29.Expense)
	}

	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("january event leaked into month totals: %s", result.Summary.TotalIncome)
	}
}

func TestCustomWindowDailyScenario(t *testing.T) {
	window := CustomWindow(date(2024, time.January, 1), date(2024, time.January, 5))
	events := []MonetaryEvent{
		income(100, date(2024, time.January, 3)),
		income(50, date(2024, time.January, 3)),
		expense(20, date(2024, time.January, 5)),
	}

	result := mustAggregate(t, events, nil, window, date(2024, time.June, 1))

	if len(result.Series) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(result.Series))
	}
	want := []string{"Jan 1", "Jan 2", "Jan 3", "Jan 4", "Jan 5"}
	for i, bucket := range result.Series {
		if bucket.Label != want[i] {
			t.Fatalf("bucket %d: expected %q, got %q", i, want[i], bucket.Label)
		}
	}

	jan3 := bucketByLabel(t, result.Series, "Jan 3")
	if !jan3.Income.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected Jan 3 income 150, got %s", jan3.Income)
	}
	jan5 := bucketByLabel(t, result.Series, "Jan 5")
	if !jan5.Expense.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected Jan 5 expense 20, got %s", jan5.Expense)
	}

	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(150)) || !result.Summary.TotalExpense.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("unexpected totals: %+v", result.Summary)
	}
}

func TestCustomWindowMonthlyOverNinetyDays(t *testing.T) {
	window := CustomWindow(date(2024, time.January, 1), date(2024, time.May, 1))
	events := []MonetaryEvent{
		income(300, date(2024, time.February, 14)),
		expense(75, date(2024, time.April, 30)),
		income(40, date(2024, time.May, 1)),
	}

	result := mustAggregate(t, events, nil, window, date(2024, time.June, 1))

	want := []string{"Jan 24", "Feb 24", "Mar 24", "Apr 24", "May 24"}
	if len(result.Series) != len(want) {
		t.Fatalf("expected %d monthly buckets, got %d", len(want), len(result.Series))
	}
	for i, bucket := range result.Series {
		if bucket.Label != want[i] {
			t.Fatalf("bucket %d: expected %q, got %q", i, want[i], bucket.Label)
		}
	}

	feb := bucketByLabel(t, result.Series, "Feb 24")
	if !feb.Income.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected Feb income 300, got %s", feb.Income)
	}
	apr := bucketByLabel(t, result.Series, "Apr 24")
	if !apr.Expense.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected Apr expense 75, got %s", apr.Expense)
	}
	may := bucketByLabel(t, result.Series, "May 24")
	if !may.Income.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected May income 40, got %s", may.Income)
	}
}

func TestCustomWindowMonthlyMatchesYearNotPosition(t *testing.T) {
	// Two Januaries a year apart must land in different buckets.
	window := CustomWindow(date(2023, time.November, 1), date(2024, time.February, 28))
	events := []MonetaryEvent{
		income(10, date(2023, time.December, 5)),
		income(20, date(2024, time.January, 5)),
	}

	result := mustAggregate(t, events, nil, window, date(2024, time.June, 1))

	dec23 := bucketByLabel(t, result.Series, "Dec 23")
	if !dec23.Income.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected Dec 23 income 10, got %s", dec23.Income)
	}
	jan24 := bucketByLabel(t, result.Series, "Jan 24")
	if !jan24.Income.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected Jan 24 income 20, got %s", jan24.Income)
	}
}

func TestCustomWindowBackwardsRejected(t *testing.T) {
	window := CustomWindow(date(2024, time.May, 1), date(2024, time.January, 1))
	_, err := Aggregate(nil, nil, window, date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestNegativeAmountRejected(t *testing.T) {
	events := []MonetaryEvent{
		income(100, date(2024, time.March, 1)),
		{Amount: decimal.NewFromInt(-5), OccurredOn: date(2024, time.March, 2), Kind: KindExpense},
	}
	_, err := Aggregate(events, nil, YearWindow(), date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}

	pending := []MonetaryEvent{{Amount: decimal.NewFromInt(-1), Kind: KindIncome}}
	_, err = Aggregate(nil, pending, YearWindow(), date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent for pending, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	result := mustAggregate(t, nil, nil, YearWindow(), date(2024, time.June, 15))

	if !result.Summary.TotalIncome.IsZero() || !result.Summary.TotalExpense.IsZero() || !result.Summary.NetProfit.IsZero() {
		t.Fatalf("expected zero totals, got %+v", result.Summary)
	}
	if len(result.Series) != 12 {
		t.Fatalf("expected 12 zero buckets, got %d", len(result.Series))
	}
	for _, bucket := range result.Series {
		if !bucket.Income.IsZero() || !bucket.Expense.IsZero() {
			t.Fatalf("expected zero bucket, got %+v", bucket)
		}
	}
}

func TestPendingIncomeIgnoresWindow(t *testing.T) {
	pending := []MonetaryEvent{
		income(700, date(2019, time.March, 1)),
		income(300, date(2030, time.December, 31)),
	}
	result := mustAggregate(t, nil, pending, MonthWindow(), date(2024, time.June, 15))

	if !result.Summary.PendingIncome.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected pending 1000, got %s", result.Summary.PendingIncome)
	}
	if !result.Summary.TotalIncome.IsZero() {
		t.Fatalf("pending leaked into windowed income: %s", result.Summary.TotalIncome)
	}
}

func TestSumPreservation(t *testing.T) {
	now := date(2024, time.June, 15)
	events := []MonetaryEvent{
		income(120, date(2024, time.January, 2)),
		income(80, date(2024, time.July, 19)),
		expense(55, date(2024, time.February, 29)),
		expense(45, date(2024, time.December, 31)),
	}

	result := mustAggregate(t, events, nil, YearWindow(), now)

	seriesIncome := decimal.Zero
	seriesExpense := decimal.Zero
	for _, bucket := range result.Series {
		seriesIncome = seriesIncome.Add(bucket.Income)
		seriesExpense = seriesExpense.Add(bucket.Expense)
	}

	if !seriesIncome.Equal(result.Summary.TotalIncome) {
		t.Fatalf("series income %s != summary income %s", seriesIncome, result.Summary.TotalIncome)
	}
	if !seriesExpense.Equal(result.Summary.TotalExpense) {
		t.Fatalf("series expense %s != summary expense %s", seriesExpense, result.Summary.TotalExpense)
	}
	if !result.Summary.NetProfit.Equal(result.Summary.TotalIncome.Sub(result.Summary.TotalExpense)) {
		t.Fatalf("net profit identity violated: %+v", result.Summary)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	now := date(2024, time.June, 15)
	events := []MonetaryEvent{
		income(100, date(2024, time.March, 10)),
		expense(40, date(2024, time.March, 12)),
	}
	pending := []MonetaryEvent{income(25, date(2023, time.May, 5))}

	first := mustAggregate(t, events, pending, YearWindow(), now)
	second := mustAggregate(t, events, pending, YearWindow(), now)

	if len(first.Series) != len(second.Series) {
		t.Fatalf("series length differs: %d vs %d", len(first.Series), len(second.Series))
	}
	for i := range first.Series {
		if first.Series[i].Label != second.Series[i].Label ||
			!first.Series[i].Income.Equal(second.Series[i].Income) ||
			!first.Series[i].Expense.Equal(second.Series[i].Expense) {
			t.Fatalf("bucket %d differs: %+v vs %+v", i, first.Series[i], second.Series[i])
		}
	}
	if !first.Summary.TotalIncome.Equal(second.Summary.TotalIncome) ||
		!first.Summary.TotalExpense.Equal(second.Summary.TotalExpense) ||
		!first.Summary.NetProfit.Equal(second.Summary.NetProfit) ||
		!first.Summary.PendingIncome.Equal(second.Summary.PendingIncome) {
		t.Fatalf("summaries differ: %+v vs %+v", first.Summary, second.Summary)
	}
}

func TestExactDecimalArithmetic(t *testing.T) {
	cents := func(value string, on time.Time, kind EventKind) MonetaryEvent {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", value, err)
		}
		return MonetaryEvent{Amount: amount, OccurredOn: on, Kind: kind}
	}

	// 0.1 + 0.2 style inputs that drift under binary floats.
	events := []MonetaryEvent{
		cents("0.10", date(2024, time.March, 1), KindIncome),
		cents("0.20", date(2024, time.March, 2), KindIncome),
		cents("0.05", date(2024, time.March, 3), KindExpense),
	}

	result := mustAggregate(t, events, nil, YearWindow(), date(2024, time.June, 1))

	if result.Summary.TotalIncome.String() != "0.3" {
		t.Fatalf("expected income 0.3, got %s", result.Summary.TotalIncome)
	}
	if result.Summary.NetProfit.String() != "0.25" {
		t.Fatalf("expected net 0.25, got %s", result.Summary.NetProfit)
	}
}

func TestCustomWindowSingleDay(t *testing.T) {
	day := date(2024, time.August, 9)
	result := mustAggregate(t, []MonetaryEvent{income(12, day)}, nil, CustomWindow(day, day), date(2024, time.September, 1))

	if len(result.Series) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(result.Series))
	}
	if result.Series[0].Label != "Aug 9" {
		t.Fatalf("expected label Aug 9, got %q", result.Series[0].Label)
	}
	if !result.Series[0].Income.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected income 12, got %s", result.Series[0].Income)
	}
}

func TestCustomWindowNinetyDayBoundary(t *testing.T) {
	start := date(2024, time.January, 1)

	// Exactly 90 days stays daily.
	daily := mustAggregate(t, nil, nil, CustomWindow(start, start.AddDate(0, 0, 89)), date(2024, time.June, 1))
	if len(daily.Series) != 90 {
		t.Fatalf("expected 90 daily buckets, got %d", len(daily.Series))
	}

	// 91 days flips to monthly: Jan 1 .. Mar 31 touches three months.
	monthly := mustAggregate(t, nil, nil, CustomWindow(start, start.AddDate(0, 0, 90)), date(2024, time.June, 1))
	if len(monthly.Series) != 3 {
		t.Fatalf("expected 3 monthly buckets Jan..Mar, got %d", len(monthly.Series))
	}
	if monthly.Series[0].Label != "Jan 24" || monthly.Series[2].Label != "Mar 24" {
		t.Fatalf("unexpected monthly labels: %+v", monthly.Series)
	}
}
