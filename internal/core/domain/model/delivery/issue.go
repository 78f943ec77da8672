package delivery

import (
	"fmt"
	"time"

	"supplyline/internal/pkg/errs"
)

// IssueType classifies what went wrong during a delivery attempt.
type IssueType string

const (
	IssueCustomerUnavailable IssueType = "customer_unavailable"
	IssueWrongAddress        IssueType = "wrong_address"
	IssueAddressNotFound     IssueType = "address_not_found"
	IssueCustomerRefused     IssueType = "customer_refused"
	IssueProductDamaged      IssueType = "product_damaged"
	IssueVehicleBreakdown    IssueType = "vehicle_breakdown"
	IssueWeather             IssueType = "weather"
	IssueSecurity            IssueType = "security"
	IssueOther               IssueType = "other"
)

// Validate checks that the issue type belongs to the known vocabulary.
func (t IssueType) Validate() error {
	switch t {
	case IssueCustomerUnavailable, IssueWrongAddress, IssueAddressNotFound,
		IssueCustomerRefused, IssueProductDamaged, IssueVehicleBreakdown,
		IssueWeather, IssueSecurity, IssueOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("issueType",
		fmt.Errorf("%q is not a valid issue type", string(t)))
}

func (t IssueType) String() string {
	return string(t)
}

// Issue is one record of the delivery's append-only issue list. The
// resolution text is set only when the worker resolved the problem on the
// spot and completed the delivery anyway.
type Issue struct {
	issueType  IssueType
	descr      string
	resolution string
	reportedAt time.Time
}

// NewIssue creates a validated issue record.
func NewIssue(issueType IssueType, description, resolution string, reportedAt time.Time) (Issue, error) {
	if err := issueType.Validate(); err != nil {
		return Issue{}, err
	}
	if description == "" {
		return Issue{}, errs.NewValueIsRequiredError("issue description")
	}
	return Issue{
		issueType:  issueType,
		descr:      description,
		resolution: resolution,
		reportedAt: reportedAt,
	}, nil
}

func (i Issue) Type() IssueType {
	return i.issueType
}

func (i Issue) Description() string {
	return i.descr
}

func (i Issue) Resolution() string {
	return i.resolution
}

func (i Issue) ReportedAt() time.Time {
	return i.reportedAt
}
