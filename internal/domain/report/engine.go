package report

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// maxDailyBuckets guards the daily iteration against malformed ranges.
// The series is truncated, never looped unbounded.
const maxDailyBuckets = 1000

// monthlyThresholdDays is the inclusive day span above which a custom
// window switches from daily to monthly buckets.
const monthlyThresholdDays = 90

// Aggregate computes summary totals and a chart-ready series from a fixed
// snapshot of monetary events. events carry paid invoices and approved
// expenses; pending carries sent/overdue invoice amounts, which are summed
// across all time. The function is pure: it reads no clock and mutates no
// input, so identical arguments always produce identical results.
func Aggregate(events, pending []MonetaryEvent, window ReportWindow, now time.Time) (AggregationResult, error) {
	if err := validateEvents(events); err != nil {
		return AggregationResult{}, err
	}
	if err := validateEvents(pending); err != nil {
		return AggregationResult{}, err
	}

	start, end, err := resolveWindow(window, now)
	if err != nil {
		return AggregationResult{}, err
	}

	summary := SummaryTotals{
		TotalIncome:   decimal.Zero,
		TotalExpense:  decimal.Zero,
		PendingIncome: decimal.Zero,
	}
	for _, event := range events {
		day := dayOf(event.OccurredOn)
		if day.Before(start) || day.After(end) {
			continue
		}
		switch event.Kind {
		case KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(event.Amount)
		case KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(event.Amount)
		}
	}
	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpense)

	for _, event := range pending {
		summary.PendingIncome = summary.PendingIncome.Add(event.Amount)
	}

	return AggregationResult{
		Summary: summary,
		Series:  buildSeries(events, window, start, end, now),
	}, nil
}

func validateEvents(events []MonetaryEvent) error {
	for _, event := range events {
		if event.Amount.IsNegative() {
			return ErrInvalidEvent
		}
	}
	return nil
}

// resolveWindow translates the window tag plus the reference instant into
// a concrete inclusive day range. Both bounds are day-normalized; the end
// day counts in full.
func resolveWindow(window ReportWindow, now time.Time) (time.Time, time.Time, error) {
	switch window.Kind {
	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return start, end, nil
	case WindowCustom:
		start := dayOf(window.Start)
		end := dayOf(window.End)
		if end.Before(start) {
			return time.Time{}, time.Time{}, ErrInvalidWindow
		}
		return start, end, nil
	default:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end, nil
	}
}

func buildSeries(events []MonetaryEvent, window ReportWindow, start, end, now time.Time) []Bucket {
	switch window.Kind {
	case WindowMonth:
		return dailySeriesOfMonth(events, now)
	case WindowCustom:
		if inclusiveDaySpan(start, end) > monthlyThresholdDays {
			return monthlySeries(events, start, end, "Jan 06")
		}
		return dailySeries(events, start, end, "Jan 2")
	default:
		return yearSeries(events, now.Year())
	}
}

// yearSeries yields exactly twelve buckets, Jan through Dec of the given
// year, whether or not a month has events.
func yearSeries(events []MonetaryEvent, year int) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i] = zeroBucket(time.Month(i + 1).String()[:3])
	}
	for _, event := range events {
		if event.OccurredOn.Year() != year {
			continue
		}
		addToBucket(&buckets[int(event.OccurredOn.Month())-1], event)
	}
	return buckets
}

// dailySeriesOfMonth yields one bucket per day of the current month,
// labeled with the bare day number.
func dailySeriesOfMonth(events []MonetaryEvent, now time.Time) []Bucket {
	year, month := now.Year(), now.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	buckets := make([]Bucket, daysInMonth)
	for i := range buckets {
		buckets[i] = zeroBucket(strconv.Itoa(i + 1))
	}
	for _, event := range events {
		if event.OccurredOn.Year() != year || event.OccurredOn.Month() != month {
			continue
		}
		addToBucket(&buckets[event.OccurredOn.Day()-1], event)
	}
	return buckets
}

// monthlySeries walks calendar months from the start's month through the
// end's month inclusive. Events are matched on the (month, year) pair, not
// on list position, so sparse months line up correctly.
func monthlySeries(events []MonetaryEvent, start, end time.Time, labelLayout string) []Bucket {
	var buckets []Bucket
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(end) {
		bucket := zeroBucket(cursor.Format(labelLayout))
		for _, event := range events {
			if event.OccurredOn.Year() != cursor.Year() || event.OccurredOn.Month() != cursor.Month() {
				continue
			}
			addToBucket(&bucket, event)
		}
		buckets = append(buckets, bucket)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return buckets
}

// dailySeries yields one bucket per calendar day in [start, end],
// truncated at maxDailyBuckets.
func dailySeries(events []MonetaryEvent, start, end time.Time, labelLayout string) []Bucket {
	var buckets []Bucket
	cursor := start
	for !cursor.After(end) && len(buckets) < maxDailyBuckets {
		bucket := zeroBucket(cursor.Format(labelLayout))
		for _, event := range events {
			if !dayOf(event.OccurredOn).Equal(cursor) {
				continue
			}
			addToBucket(&bucket, event)
		}
		buckets = append(buckets, bucket)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return buckets
}

func addToBucket(bucket *Bucket, event MonetaryEvent) {
	switch event.Kind {
	case KindIncome:
		bucket.Income = bucket.Income.Add(event.Amount)
	case KindExpense:
		bucket.Expense = bucket.Expense.Add(event.Amount)
	}
}

func zeroBucket(label string) Bucket {
	return Bucket{Label: label, Income: decimal.Zero, Expense: decimal.Zero}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func inclusiveDaySpan(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
