// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery run persistence. The status log rows are part of the run
// aggregate: they are loaded with it and appended with it, never rewritten.
package deliveryrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery runs.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookingID   uuid.UUID  `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	Direction   string     `gorm:"type:varchar(16)"`
	ScheduledAt time.Time  `gorm:"index"`
	Address     string
	Status      string     `gorm:"type:varchar(16);index"`
	RemindedAt  *time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery run entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// StatusChangeDTO represents one append-only status log row. Rows are keyed by
// their position in the run's log, which also fixes the replay order.
type StatusChangeDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	FromStatus string    `gorm:"type:varchar(16)"`
	ToStatus   string    `gorm:"type:varchar(16)"`
	Actor      string
	Note       string
	At         time.Time
}

// TableName specifies the database table name for status log rows.
func (StatusChangeDTO) TableName() string {
	return "delivery_status_changes"
}

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(run *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := run.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:          run.ID().Bytes(),
		BookingID:   run.BookingID().Bytes(),
		DriverID:    driverID,
		Direction:   run.Direction().String(),
		ScheduledAt: run.ScheduledAt(),
		Address:     run.Address(),
		Status:      run.Status().String(),
		RemindedAt:  run.RemindedAt(),
	}
}

func statusChangesFromDomain(run *delivery.Delivery, from int) []StatusChangeDTO {
	log := run.StatusLog()
	dtos := make([]StatusChangeDTO, 0, len(log)-from)
	for seq := from; seq < len(log); seq++ {
		row := log[seq]
		dtos = append(dtos, StatusChangeDTO{
			DeliveryID: run.ID().Bytes(),
			Seq:        seq,
			FromStatus: row.From().String(),
			ToStatus:   row.To().String(),
			Actor:      row.Actor(),
			Note:       row.Note(),
			At:         row.At(),
		})
	}
	return dtos
}

func toDomain(dto DeliveryDTO, logDTOs []StatusChangeDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	direction, err := delivery.DirectionFromString(dto.Direction)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	statusLog := make([]delivery.StatusChange, 0, len(logDTOs))
	for _, row := range logDTOs {
		from, rowErr := delivery.StatusFromString(row.FromStatus)
		if rowErr != nil {
			return nil, rowErr
		}
		to, rowErr := delivery.StatusFromString(row.ToStatus)
		if rowErr != nil {
			return nil, rowErr
		}
		change, rowErr := delivery.RestoreStatusChange(from, to, row.Actor, row.Note, row.At)
		if rowErr != nil {
			return nil, rowErr
		}
		statusLog = append(statusLog, change)
	}

	return delivery.RestoreDelivery(
		id,
		bookingID,
		driverID,
		direction,
		dto.ScheduledAt,
		dto.Address,
		status,
		statusLog,
		dto.RemindedAt,
	)
}

func driverFromDomain(driver *delivery.Driver) DriverDTO {
	return DriverDTO{
		ID:     driver.ID().Bytes(),
		Name:   driver.Name(),
		Phone:  driver.Phone(),
		Active: driver.IsActive(),
	}
}

func driverToDomain(dto DriverDTO) (*delivery.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDriver(id, dto.Name, dto.Phone, dto.Active)
}
