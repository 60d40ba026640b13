// Package cartrepo provides data transfer objects and mapping functions for
// checkout cart persistence.
package cartrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
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

// QuoteDTO represents the embedded price quote shown to the customer.
type QuoteDTO struct {
	Subtotal    MoneyDTO `gorm:"embedded;embeddedPrefix:subtotal_"`
	Discount    MoneyDTO `gorm:"embedded;embeddedPrefix:discount_"`
	DeliveryFee MoneyDTO `gorm:"embedded;embeddedPrefix:delivery_fee_"`
	Total       MoneyDTO `gorm:"embedded;embeddedPrefix:total_"`
	Deposit     MoneyDTO `gorm:"embedded;embeddedPrefix:deposit_"`
}

// CartDTO represents the database structure for persisting cart aggregates.
// The abandonment sweeper scans by status and last activity, hence the
// composite index.
type CartDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"`
	Email          string
	Phone          string
	CategoryID     uuid.UUID `gorm:"type:uuid;index"`
	PeriodStart    time.Time
	PeriodEnd      time.Time
	PickupAddress  string
	ReturnAddress  string
	Quote          QuoteDTO  `gorm:"embedded;embeddedPrefix:quote_"`
	Status         string    `gorm:"type:varchar(16);index:idx_carts_status_activity"`
	LastActivityAt time.Time `gorm:"index:idx_carts_status_activity"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	quote := aggregate.Quote()
	return CartDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    customerID,
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		CategoryID:    aggregate.CategoryID().Bytes(),
		PeriodStart:   aggregate.Period().Start(),
		PeriodEnd:     aggregate.Period().End(),
		PickupAddress: aggregate.PickupAddress(),
		ReturnAddress: aggregate.ReturnAddress(),
		Quote: QuoteDTO{
			Subtotal:    moneyToDTO(quote.Subtotal()),
			Discount:    moneyToDTO(quote.Discount()),
			DeliveryFee: moneyToDTO(quote.DeliveryFee()),
			Total:       moneyToDTO(quote.Total()),
			Deposit:     moneyToDTO(quote.Deposit()),
		},
		Status:         aggregate.Status().String(),
		LastActivityAt: aggregate.LastActivityAt(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewRentalPeriod(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	quote, err := quoteToDomain(dto.Quote)
	if err != nil {
		return nil, err
	}

	status, err := cart.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(
		id,
		customerID,
		dto.Email,
		dto.Phone,
		categoryID,
		period,
		dto.PickupAddress,
		dto.ReturnAddress,
		quote,
		status,
		dto.LastActivityAt,
		dto.CreatedAt,
	)
}

func quoteToDomain(dto QuoteDTO) (booking.Charges, error) {
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
