package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrAttachOrderDocumentCommandIsNotConstructed = errors.New(
	"AttachOrderDocumentCommand must be created via NewAttachOrderDocumentCommand constructor",
)

// DocumentKind selects which document reference is attached.
type DocumentKind string

const (
	DocumentInvoice DocumentKind = "invoice"
	DocumentReceipt DocumentKind = "receipt"
)

// AttachOrderDocumentCommand stores the URL of an invoice or receipt held by external storage.
type AttachOrderDocumentCommand struct {
	ref      OrderRef
	document DocumentKind
	url      string

	guard guard.ConstructorGuard
}

func NewAttachOrderDocumentCommand(ref OrderRef, document DocumentKind, url string) (AttachOrderDocumentCommand, error) {
	var errDocument error
	if document != DocumentInvoice && document != DocumentReceipt {
		errDocument = errs.NewValueIsInvalidErrorWithCause("document kind", fmt.Errorf("%q is not supported", document))
	}
	if err := errors.Join(ref.Kind().Validate(), errDocument); err != nil {
		return AttachOrderDocumentCommand{}, err
	}

	return AttachOrderDocumentCommand{
		ref:      ref,
		document: document,
		url:      url,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AttachOrderDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrderDocumentCommandIsNotConstructed)
}

func (c AttachOrderDocumentCommand) Ref() OrderRef {
	return c.ref
}

func (c AttachOrderDocumentCommand) Document() DocumentKind {
	return c.document
}

func (c AttachOrderDocumentCommand) URL() string {
	return c.url
}
