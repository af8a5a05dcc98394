// Package pricing computes the cost breakdown of a parking session: parking
// fee for the elapsed hours, a flat service fee, and GST applied on top of
// both. All functions are pure; inputs are expected to be nonnegative and are
// not validated here (caller responsibility).
package pricing

import (
	"math"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Options параметры расчета. Нулевые значения заменяются дефолтами.
type Options struct {
	GSTRate    float64 // процент, по умолчанию domain.DefaultGSTRate
	ServiceFee float64 // фиксированный сбор, по умолчанию domain.DefaultServiceFee
}

// Quote itemized cost of a parking session
type Quote struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	GST        float64 `json:"gst"`
	GSTRate    float64 `json:"gstRate"`
	Total      float64 `json:"total"`
}

// CalculateGST returns the GST portion of amount at the given percentage rate.
// With no rate supplied the default 18% applies.
func CalculateGST(amount float64, rate ...float64) float64 {
	r := domain.DefaultGSTRate
	if len(rate) > 0 {
		r = rate[0]
	}
	return amount * r / 100
}

// Calculate builds the full quote for the given hourly rate and duration.
//
//	subtotal = hourlyRate * hours
//	gst      = (subtotal + serviceFee) * gstRate%
//	total    = subtotal + serviceFee + gst
func Calculate(hourlyRate, hours float64, opts *Options) Quote {
	gstRate := domain.DefaultGSTRate
	serviceFee := domain.DefaultServiceFee
	if opts != nil {
		if opts.GSTRate != 0 {
			gstRate = opts.GSTRate
		}
		if opts.ServiceFee != 0 {
			serviceFee = opts.ServiceFee
		}
	}

	subtotal := hourlyRate * hours
	gst := CalculateGST(subtotal+serviceFee, gstRate)

	return Quote{
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		GST:        gst,
		GSTRate:    gstRate,
		Total:      subtotal + serviceFee + gst,
	}
}

// Round2 rounds to two decimal places (display precision)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
