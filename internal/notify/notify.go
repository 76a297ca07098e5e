package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/riverbooking/internal/kafka"
)

// Sender delivers reservation notices to the booking's contact phone.
// The delivery channel is a stub for now; the worker only needs the
// event-to-message mapping.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("notify %s: %s for reservation %s, suite %s on %s\n",
		event.Phone, event.Type, event.ReservationID, event.SuiteID, event.TravelDate)
	return nil
}
