// Package vehiclerepo provides data transfer objects and mapping functions for
// fleet persistence. It implements the repository pattern for the vehicle
// category and unit aggregates, handling the conversion between domain
// entities and database representations.
package vehiclerepo

import (
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"

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

// CategoryDTO represents the database structure for persisting vehicle
// category aggregates.
type CategoryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Class        string
	Seats        int
	Transmission string   `gorm:"type:varchar(16)"`
	DailyRate    MoneyDTO `gorm:"embedded;embeddedPrefix:daily_rate_"`
	Deposit      MoneyDTO `gorm:"embedded;embeddedPrefix:deposit_"`
	DeliveryFee  MoneyDTO `gorm:"embedded;embeddedPrefix:delivery_fee_"`
	Active       bool     `gorm:"index"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// UnitDTO represents the database structure for persisting vehicle unit
// aggregates. Units are queried by category and status when bookings are
// confirmed, hence the composite index.
type UnitDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;index:idx_units_category_status"`
	Plate      string    `gorm:"uniqueIndex"`
	VIN        string    `gorm:"column:vin"`
	Year       int
	OdometerKm int
	Status     string `gorm:"type:varchar(16);index:idx_units_category_status"`
}

// TableName specifies the database table name for unit entities.
func (UnitDTO) TableName() string {
	return "units"
}

func categoryFromDomain(category *vehicle.Category) CategoryDTO {
	return CategoryDTO{
		ID:           category.ID().Bytes(),
		Name:         category.Name(),
		Class:        category.Class(),
		Seats:        category.Seats(),
		Transmission: string(category.Transmission()),
		DailyRate:    moneyToDTO(category.DailyRate()),
		Deposit:      moneyToDTO(category.Deposit()),
		DeliveryFee:  moneyToDTO(category.DeliveryFee()),
		Active:       category.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*vehicle.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dailyRate, err := dto.DailyRate.toDomain()
	if err != nil {
		return nil, err
	}

	deposit, err := dto.Deposit.toDomain()
	if err != nil {
		return nil, err
	}

	deliveryFee, err := dto.DeliveryFee.toDomain()
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreCategory(
		id,
		dto.Name,
		dto.Class,
		dto.Seats,
		vehicle.Transmission(dto.Transmission),
		dailyRate,
		deposit,
		deliveryFee,
		dto.Active,
	)
}

func unitFromDomain(unit *vehicle.Unit) UnitDTO {
	return UnitDTO{
		ID:         unit.ID().Bytes(),
		CategoryID: unit.CategoryID().Bytes(),
		Plate:      unit.Plate(),
		VIN:        unit.VIN(),
		Year:       unit.Year(),
		OdometerKm: unit.OdometerKm(),
		Status:     unit.Status().String(),
	}
}

func unitToDomain(dto UnitDTO) (*vehicle.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.UnitStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreUnit(id, categoryID, dto.Plate, dto.VIN, dto.Year, dto.OdometerKm, status)
}
