package domain

// Availability thresholds
const (
	// AlmostFullRatio: below this share of free spots the status becomes almost_full
	AlmostFullRatio = 0.3
)

// Pricing defaults
const (
	DefaultGSTRate    = 18.0 // percent, applied to (subtotal + service fee)
	DefaultServiceFee = 5.0  // flat, same currency unit as hourly rates
)

// Business validation constants
const (
	MinExpectedDurationHours = 1
	MaxExpectedDurationHours = 168 // 1 week
	MaxVehicleNumberLength   = 20
	MaxVehicleTypeLength     = 30
	MinPasswordLength        = 6
)

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}
