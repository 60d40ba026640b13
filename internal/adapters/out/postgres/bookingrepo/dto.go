// Package bookingrepo provides data transfer objects and mapping functions for
// booking persistence. It implements the repository pattern for the booking
// aggregate and its damage reports, handling the conversion between domain
// entities and database representations.
package bookingrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MoneyDTO represents an embedded money column pair: minor units plus the
// ISO currency code.
type MoneyDTO struct {
	Amount   int64
	Currency string `gorm:"type:varchar(3)"`
}

func moneyToDTO(m kernel.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount(), Currency: m.Currency()}
}

func (d MoneyDTO) toDomain() (kernel.Money, error) {
	return kernel.NewMoney(d.Amount, d.Currency)
}

// ChargesDTO represents the embedded financial snapshot priced at checkout.
type ChargesDTO struct {
	Subtotal    MoneyDTO `gorm:"embedded;embeddedPrefix:subtotal_"`
	Discount    MoneyDTO `gorm:"embedded;embeddedPrefix:discount_"`
	DeliveryFee MoneyDTO `gorm:"embedded;embeddedPrefix:delivery_fee_"`
	Total       MoneyDTO `gorm:"embedded;embeddedPrefix:total_"`
	Deposit     MoneyDTO `gorm:"embedded;embeddedPrefix:deposit_"`
}

// BookingDTO represents the database structure for persisting booking
// aggregates. Bookings are queried by customer, by category and period for the
// availability check, and by status for the back-office list.
type BookingDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID             uuid.UUID  `gorm:"type:uuid;index"`
	CategoryID             uuid.UUID  `gorm:"type:uuid;index:idx_bookings_category_period"`
	UnitID                 *uuid.UUID `gorm:"type:uuid;index"`
	PeriodStart            time.Time  `gorm:"index:idx_bookings_category_period"`
	PeriodEnd              time.Time  `gorm:"index:idx_bookings_category_period"`
	PickupAddress          string
	ReturnAddress          string
	Charges                ChargesDTO `gorm:"embedded;embeddedPrefix:charges_"`
	PaymentRef             string
	CancellationFeeAmount  *int64
	CancellationFeeCurrency *string `gorm:"type:varchar(3)"`
	Status                 string  `gorm:"type:varchar(16);index"`
	CreatedAt              time.Time
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// DamageReportDTO represents the database structure for persisting damage
// reports recorded at return settlement. Rows are write-once.
type DamageReportDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID   uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Severity    string         `gorm:"type:varchar(16)"`
	Charge      MoneyDTO       `gorm:"embedded;embeddedPrefix:charge_"`
	PhotoKeys   pq.StringArray `gorm:"type:text[]"`
	RecordedAt  time.Time
}

// TableName specifies the database table name for damage report entities.
func (DamageReportDTO) TableName() string {
	return "damage_reports"
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	var unitID *uuid.UUID
	if id := aggregate.UnitID(); id != nil {
		raw := id.Bytes()
		unitID = &raw
	}

	var feeAmount *int64
	var feeCurrency *string
	if fee := aggregate.CancellationFee(); fee != nil {
		amount := fee.Amount()
		currency := fee.Currency()
		feeAmount = &amount
		feeCurrency = &currency
	}

	charges := aggregate.Charges()
	return BookingDTO{
		ID:                     aggregate.ID().Bytes(),
		CustomerID:             aggregate.CustomerID().Bytes(),
		CategoryID:             aggregate.CategoryID().Bytes(),
		UnitID:                 unitID,
		PeriodStart:            aggregate.Period().Start(),
		PeriodEnd:              aggregate.Period().End(),
		PickupAddress:          aggregate.PickupAddress(),
		ReturnAddress:          aggregate.ReturnAddress(),
		Charges: ChargesDTO{
			Subtotal:    moneyToDTO(charges.Subtotal()),
			Discount:    moneyToDTO(charges.Discount()),
			DeliveryFee: moneyToDTO(charges.DeliveryFee()),
			Total:       moneyToDTO(charges.Total()),
			Deposit:     moneyToDTO(charges.Deposit()),
		},
		PaymentRef:             aggregate.PaymentRef(),
		CancellationFeeAmount:  feeAmount,
		CancellationFeeCurrency: feeCurrency,
		Status:                 aggregate.Status().String(),
		CreatedAt:              aggregate.CreatedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	var unitID *kernel.UUID
	if dto.UnitID != nil {
		uID, unitErr := kernel.UUIDFromBytes((*dto.UnitID)[:])
		if unitErr != nil {
			return nil, unitErr
		}
		unitID = &uID
	}

	period, err := kernel.NewRentalPeriod(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	charges, err := chargesToDomain(dto.Charges)
	if err != nil {
		return nil, err
	}

	var cancellationFee *kernel.Money
	if dto.CancellationFeeAmount != nil && dto.CancellationFeeCurrency != nil {
		fee, feeErr := kernel.NewMoney(*dto.CancellationFeeAmount, *dto.CancellationFeeCurrency)
		if feeErr != nil {
			return nil, feeErr
		}
		cancellationFee = &fee
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		customerID,
		categoryID,
		unitID,
		period,
		dto.PickupAddress,
		dto.ReturnAddress,
		charges,
		dto.PaymentRef,
		cancellationFee,
		status,
		dto.CreatedAt,
	)
}

func chargesToDomain(dto ChargesDTO) (booking.Charges, error) {
	subtotal, err := dto.Subtotal.toDomain()
	if err != nil {
		return booking.Charges{}, err
	}

	discount, err := dto.Discount.toDomain()
	if err != nil {
		return booking.Charges{}, err
	}

	deliveryFee, err := dto.DeliveryFee.toDomain()
	if err != nil {
		return booking.Charges{}, err
	}

	total, err := dto.Total.toDomain()
	if err != nil {
		return booking.Charges{}, err
	}

	deposit, err := dto.Deposit.toDomain()
	if err != nil {
		return booking.Charges{}, err
	}

	return booking.NewCharges(subtotal, discount, deliveryFee, total, deposit)
}

func damageReportFromDomain(report *booking.DamageReport) DamageReportDTO {
	return DamageReportDTO{
		ID:          report.ID().Bytes(),
		BookingID:   report.BookingID().Bytes(),
		Description: report.Description(),
		Severity:    report.Severity().String(),
		Charge:      moneyToDTO(report.Charge()),
		PhotoKeys:   pq.StringArray(report.PhotoKeys()),
		RecordedAt:  report.RecordedAt(),
	}
}

func damageReportToDomain(dto DamageReportDTO) (*booking.DamageReport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	severity, err := booking.SeverityFromString(dto.Severity)
	if err != nil {
		return nil, err
	}

	charge, err := dto.Charge.toDomain()
	if err != nil {
		return nil, err
	}

	return booking.RestoreDamageReport(
		id,
		bookingID,
		dto.Description,
		severity,
		charge,
		[]string(dto.PhotoKeys),
		dto.RecordedAt,
	)
}
