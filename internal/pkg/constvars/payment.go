package constvars

// Settlement statuses reported by the checkout gateway.
const (
	GatewayStatusPaid    = "paid"
	GatewayStatusUnpaid  = "unpaid"
	GatewayStatusFailed  = "failed"
	GatewayStatusExpired = "expired"
)

const (
	PaymentLockKeyFormat          = "payment:verify:%s"
	PaymentLockTTLInSeconds       = 30
	BookingLimiterGroupName       = "booking"
	BookingLimiterWindowInSeconds = 60
)
