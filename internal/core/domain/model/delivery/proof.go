package delivery

import (
	"supplyline/internal/pkg/errs"
)

// Proof is the proof-of-delivery captured at completion. The signature is
// mandatory; photo and notes are optional extras.
type Proof struct {
	signature string
	photo     string
	notes     string
}

// NewProof creates a validated proof of delivery. An empty signature is a
// validation error, so a completion attempt without one never reaches the
// state machine.
func NewProof(signature, photo, notes string) (Proof, error) {
	if signature == "" {
		return Proof{}, errs.NewValueIsRequiredError("signature")
	}
	return Proof{signature: signature, photo: photo, notes: notes}, nil
}

func (p Proof) Signature() string {
	return p.signature
}

func (p Proof) Photo() string {
	return p.photo
}

func (p Proof) Notes() string {
	return p.notes
}
