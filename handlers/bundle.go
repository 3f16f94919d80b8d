package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Booking   *BookingHandler
	Resources *ResourceHandler
	PriceRule *PriceRuleHandler
	Menu      *MenuHandler
	Orders    *OrderHandler
	Guests    *GuestHandler
}
