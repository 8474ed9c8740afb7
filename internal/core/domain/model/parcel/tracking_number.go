package parcel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"parcel/internal/pkg/errs"
)

// trackingAlphabet excludes visually ambiguous characters (0/O, 1/I/L) so a
// tracking number survives being read over the phone.
const trackingAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const (
	trackingPrefix    = "PCL-"
	trackingRandomLen = 10
	trackingMaxLen    = 32
)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value
// TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError("TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the human-facing identity of a parcel. It is unique,
// immutable once issued, and the key customers and field staff use to refer
// to a shipment.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber issues a fresh tracking number of the form
// PCL-XXXXXXXXXX using cryptographically random characters.
func NewTrackingNumber() (TrackingNumber, error) {
	buf := make([]byte, trackingRandomLen)
	if _, err := rand.Read(buf); err != nil {
		return TrackingNumber{}, fmt.Errorf("generate tracking number: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return TrackingNumber{value: trackingPrefix + string(buf)}, nil
}

// TrackingNumberFromString reconstructs a tracking number received over the
// wire or read from storage. The format is deliberately permissive: any
// non-empty token without whitespace is accepted, so numbers issued before a
// format change keep resolving.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("parcelNumber")
	}
	if len(s) > trackingMaxLen || strings.ContainsAny(s, " \t\n\r") {
		return TrackingNumber{}, errs.NewValueIsInvalidError("parcelNumber")
	}
	return TrackingNumber{value: s}, nil
}

// String returns the wire form of the tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual reports whether two tracking numbers identify the same parcel.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
