package billing

import (
	"errors"
	"math"
	"time"
)

var (
	ErrUnknownAreaType = errors.New("unknown shared area type")
	ErrInvalidDiscount = errors.New("discount percentage is not a number")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Tariff is how a room's price is interpreted.
type Tariff string

const (
	TariffHour Tariff = "hour"
	TariffDay  Tariff = "day"
)

func (t Tariff) IsValid() bool {
	switch t {
	case TariffHour, TariffDay:
		return true
	default:
		return false
	}
}

// AreaType is the closed set of shared areas with fixed rates.
type AreaType string

const (
	AreaVIP     AreaType = "VIP"
	AreaQuiet   AreaType = "Quiet Area"
	AreaGeneral AreaType = "General Area"
)

func (a AreaType) IsValid() bool {
	switch a {
	case AreaVIP, AreaQuiet, AreaGeneral:
		return true
	default:
		return false
	}
}

func NewAreaType(s string) (AreaType, error) {
	a := AreaType(s)
	if !a.IsValid() {
		return "", ErrUnknownAreaType
	}
	return a, nil
}

// Shared area rates in EGP. VIP is premium, the rest share one tier.
const (
	vipHourlyRate     = 30.0
	vipDailyRate      = 150.0
	defaultHourlyRate = 20.0
	defaultDailyRate  = 100.0

	// Stays longer than this many hours are billed at the daily flat rate.
	dailyRateThresholdHours = 5.0
)

// RoomCost bills an hour-tariff stay in half-hour units rounded up with a
// one-hour minimum, and a day-tariff stay proportionally with a one-day
// minimum. The half-hour policy is the single supported one; the older
// linear time-times-rate formula is intentionally gone.
func RoomCost(price float64, tariff Tariff, elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	if minutes < 0 {
		minutes = 0
	}

	switch tariff {
	case TariffHour:
		// Ceiling to the next half-hour unit, one full hour minimum.
		billedHalfHours := (int(minutes) + 29) / 30
		if billedHalfHours < 2 {
			billedHalfHours = 2
		}
		return (price / 2) * float64(billedHalfHours)

	case TariffDay:
		days := minutes / 60 / 24
		billedDays := math.Max(days, 1)
		return price * billedDays

	default:
		return 0
	}
}

// AreaCost bills a shared-area stay: one-hour minimum, hourly up to the
// threshold, then the flat daily rate.
func AreaCost(area AreaType, elapsedHours float64) (float64, error) {
	var hourlyRate, dailyRate float64
	switch area {
	case AreaVIP:
		hourlyRate, dailyRate = vipHourlyRate, vipDailyRate
	case AreaQuiet, AreaGeneral:
		hourlyRate, dailyRate = defaultHourlyRate, defaultDailyRate
	default:
		return 0, ErrUnknownAreaType
	}

	hours := math.Max(elapsedHours, 1)
	if hours > dailyRateThresholdHours {
		return dailyRate, nil
	}
	return hours * hourlyRate, nil
}

// Discount is a percentage off the combined subtotal, clamped to [0,100].
type Discount struct {
	percent float64
}

func NewDiscount(percent float64) (Discount, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{percent: math.Min(math.Max(percent, 0), 100)}, nil
}

func NoDiscount() Discount {
	return Discount{}
}

func (d Discount) Percent() float64 {
	return d.percent
}

func (d Discount) Apply(subtotal float64) float64 {
	return subtotal - subtotal*(d.percent/100)
}

// KitchenLine is one ordered item with its resolved catalog price.
type KitchenLine struct {
	ItemID   int64
	Name     string
	Price    float64
	Quantity int
}

func (l KitchenLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// SumKitchenLines totals already-resolved kitchen lines.
func SumKitchenLines(lines []KitchenLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Total()
	}
	return total
}
