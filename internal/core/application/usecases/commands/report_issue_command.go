package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents a worker's issue report. The optional
// canComplete flag selects the resolution branch:
//   - nil: record only, the delivery stays as it is
//   - false: the delivery fails and the parent order is cancelled
//   - true: the issue was resolved on the spot and the delivery completes;
//     a non-empty resolution description is required
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	issueType   delivery.IssueType
	description string
	canComplete *bool
	resolution  string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command to report a delivery issue.
func NewReportIssueCommand(
	deliveryID kernel.UUID,
	issueType delivery.IssueType,
	description string,
	canComplete *bool,
	resolution string,
) (ReportIssueCommand, error) {
	cmd := ReportIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return ReportIssueCommand{}, err
	}
	if err := issueType.Validate(); err != nil {
		return ReportIssueCommand{}, err
	}
	if description == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("description")
	}
	if canComplete != nil && *canComplete && resolution == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("resolution")
	}

	cmd.deliveryID = deliveryID
	cmd.issueType = issueType
	cmd.description = description
	cmd.canComplete = canComplete
	cmd.resolution = resolution

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// DeliveryID returns the delivery the issue belongs to.
func (c ReportIssueCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// IssueType returns the issue classification.
func (c ReportIssueCommand) IssueType() delivery.IssueType {
	return c.issueType
}

// Description returns the issue description.
func (c ReportIssueCommand) Description() string {
	return c.description
}

// CanComplete returns the resolution branch selector, or nil for
// record-only.
func (c ReportIssueCommand) CanComplete() *bool {
	return c.canComplete
}

// Resolution returns the on-the-spot resolution description, possibly empty.
func (c ReportIssueCommand) Resolution() string {
	return c.resolution
}
