package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrReportDeliveryIssueCommandIsNotConstructed = errors.New(
	"ReportDeliveryIssueCommand must be created via NewReportDeliveryIssueCommand constructor",
)

// ReportDeliveryIssueCommand represents a driver flagging a problem on a run.
// The note is mandatory: an issue without a description helps nobody.
type ReportDeliveryIssueCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	actorName  string
	note       string

	guard guard.ConstructorGuard
}

// NewReportDeliveryIssueCommand creates a command to flag a run issue.
func NewReportDeliveryIssueCommand(
	deliveryID kernel.UUID,
	actorID kernel.UUID,
	actorName string,
	note string,
) (ReportDeliveryIssueCommand, error) {
	cmd := ReportDeliveryIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActorID(actorID),
		cmd.setActorName(actorName),
		cmd.setNote(note),
	); err != nil {
		return ReportDeliveryIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDeliveryIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportDeliveryIssueCommandIsNotConstructed)
}

// DeliveryID returns the run the issue is reported on.
func (c ReportDeliveryIssueCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ActorID returns the account reporting the issue.
func (c ReportDeliveryIssueCommand) ActorID() kernel.UUID { return c.actorID }

// ActorName returns the display name written to the run's status log.
func (c ReportDeliveryIssueCommand) ActorName() string { return c.actorName }

// Note returns the issue description.
func (c ReportDeliveryIssueCommand) Note() string { return c.note }

func (c *ReportDeliveryIssueCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *ReportDeliveryIssueCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *ReportDeliveryIssueCommand) setActorName(actorName string) error {
	if actorName == "" {
		return errs.NewValueIsRequiredError("actorName")
	}
	c.actorName = actorName
	return nil
}

func (c *ReportDeliveryIssueCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.note = note
	return nil
}
