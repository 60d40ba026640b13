package http

import (
	"github.com/oapi-codegen/runtime/types"
)

// dateLayout is the wire format of date-only query parameters.
const dateLayout = "2006-01-02"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type createCartRequest struct {
	CustomerID    *string    `json:"customerId,omitempty"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	CategoryID    string     `json:"categoryId"`
	Start         types.Date `json:"start"`
	End           types.Date `json:"end"`
	PickupAddress string     `json:"pickupAddress"`
	ReturnAddress string     `json:"returnAddress"`
}

type updateCartRequest struct {
	Start         types.Date `json:"start"`
	End           types.Date `json:"end"`
	PickupAddress string     `json:"pickupAddress"`
	ReturnAddress string     `json:"returnAddress"`
}

type checkoutCartRequest struct {
	CustomerName  string `json:"customerName"`
	PaymentMethod string `json:"paymentMethod"`
}

type checkoutCartResponse struct {
	BookingID string `json:"bookingId"`
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

type scheduleReturnDeliveryRequest struct {
	ScheduledAt string `json:"scheduledAt"`
}

type damageItemRequest struct {
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Charge      int64    `json:"charge"`
	Currency    string   `json:"currency"`
	PhotoKeys   []string `json:"photoKeys,omitempty"`
}

type completeReturnRequest struct {
	CustomerName string              `json:"customerName"`
	OdometerKm   int                 `json:"odometerKm"`
	Damages      []damageItemRequest `json:"damages,omitempty"`
}

type assignDriverRequest struct {
	DriverID *string `json:"driverId,omitempty"`
}

type advanceDeliveryRequest struct {
	ActorName string `json:"actorName"`
	Note      string `json:"note,omitempty"`
}

type setDeliveryStatusRequest struct {
	Status    string `json:"status"`
	ActorName string `json:"actorName"`
	Note      string `json:"note,omitempty"`
}

type deliveryIssueRequest struct {
	ActorName string `json:"actorName"`
	Note      string `json:"note"`
}

type openTicketRequest struct {
	BookingID *string `json:"bookingId,omitempty"`
	Contact   string  `json:"contact"`
	Subject   string  `json:"subject"`
	Body      string  `json:"body"`
	Priority  string  `json:"priority"`
}

type replyTicketRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

type setTicketStatusRequest struct {
	Status string `json:"status"`
}

type createCategoryRequest struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	Seats        int    `json:"seats"`
	Transmission string `json:"transmission"`
	DailyRate    int64  `json:"dailyRate"`
	Deposit      int64  `json:"deposit"`
	DeliveryFee  int64  `json:"deliveryFee"`
	Currency     string `json:"currency"`
}

type updateCategoryRequest struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	DailyRate   int64  `json:"dailyRate"`
	Deposit     int64  `json:"deposit"`
	DeliveryFee int64  `json:"deliveryFee"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

type addUnitRequest struct {
	CategoryID string `json:"categoryId"`
	Plate      string `json:"plate"`
	VIN        string `json:"vin"`
	Year       int    `json:"year"`
	OdometerKm int    `json:"odometerKm"`
}

type changeUnitStatusRequest struct {
	Status string `json:"status"`
}
