package models

import "testing"

func TestReservationTransitions(t *testing.T) {
	allowed := []struct{ from, to ReservationStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCheckedIn},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusCheckedIn, StatusCheckedOut},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to ReservationStatus }{
		{StatusPending, StatusCheckedIn},
		{StatusConfirmed, StatusCheckedOut},
		{StatusCheckedIn, StatusCancelled},
		{StatusCheckedOut, StatusCheckedIn},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusConfirmed},
		{StatusConfirmed, StatusConfirmed},
	}
	for _, tr := range forbidden {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be forbidden", tr.from, tr.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []ReservationStatus{StatusCheckedOut, StatusCancelled, StatusNoShow} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedIn} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestOrderTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderPlaced, OrderPreparing},
		{OrderPlaced, OrderCancelled},
		{OrderPreparing, OrderReady},
		{OrderPreparing, OrderCancelled},
		{OrderReady, OrderDelivered},
	}
	for _, tr := range allowed {
		if !CanTransitionOrder(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to OrderStatus }{
		{OrderPlaced, OrderReady},
		{OrderReady, OrderCancelled},
		{OrderDelivered, OrderPlaced},
		{OrderCancelled, OrderPreparing},
	}
	for _, tr := range forbidden {
		if CanTransitionOrder(tr.from, tr.to) {
			t.Errorf("%s -> %s should be forbidden", tr.from, tr.to)
		}
	}
}
