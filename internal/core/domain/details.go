package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DetailsType tags the payment-instrument family of a wallet's details.
type DetailsType string

const (
	DetailsTypeCards  DetailsType = "CARDS"
	DetailsTypePayPal DetailsType = "PAYPAL"
)

// Details is the closed set of wallet detail variants. The unexported method
// keeps the set sealed to this package.
type Details interface {
	DetailsType() DetailsType
	Equal(other Details) bool
	sealedDetails()
}

var (
	binPattern      = regexp.MustCompile(`^(?:[0-9]{8}|[0-9]{6})$`)
	lastFourPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

const expiryDateLayout = "200601"

// CardDetails describes an onboarded payment card. Construct it through
// NewCardDetails so that field formats are validated up front; invalid input
// must never be stored.
type CardDetails struct {
	Bin                        string `json:"bin"`
	LastFourDigits             string `json:"last_four_digits"`
	ExpiryDate                 string `json:"expiry_date"`
	Brand                      string `json:"brand"`
	PaymentInstrumentGatewayID string `json:"payment_instrument_gateway_id"`
}

// NewCardDetails validates every field and returns the constructed value.
// Bin is 6 or 8 digits, last four digits exactly 4 digits, expiry date a
// parseable yyyyMM year-month.
func NewCardDetails(bin, lastFour, expiryDate, brand, gatewayInstrumentID string) (CardDetails, error) {
	if !binPattern.MatchString(bin) {
		return CardDetails{}, fmt.Errorf("%w: invalid bin format", ErrInvalidDetails)
	}
	if !lastFourPattern.MatchString(lastFour) {
		return CardDetails{}, fmt.Errorf("%w: invalid last four digits format", ErrInvalidDetails)
	}
	if _, err := time.Parse(expiryDateLayout, expiryDate); err != nil {
		return CardDetails{}, fmt.Errorf("%w: invalid expiry date format", ErrInvalidDetails)
	}
	if brand == "" {
		return CardDetails{}, fmt.Errorf("%w: missing card brand", ErrInvalidDetails)
	}
	return CardDetails{
		Bin:                        bin,
		LastFourDigits:             lastFour,
		ExpiryDate:                 expiryDate,
		Brand:                      brand,
		PaymentInstrumentGatewayID: gatewayInstrumentID,
	}, nil
}

func (d CardDetails) DetailsType() DetailsType { return DetailsTypeCards }

// Equal is exact structural equality, brand case included.
func (d CardDetails) Equal(other Details) bool {
	o, ok := other.(CardDetails)
	return ok && d == o
}

func (d CardDetails) sealedDetails() {}

// WithGatewayInstrumentID returns a copy carrying the provider-gateway
// instrument id reported by the notification.
func (d CardDetails) WithGatewayInstrumentID(id string) CardDetails {
	d.PaymentInstrumentGatewayID = id
	return d
}

// PayPalDetails describes an onboarded PayPal account.
type PayPalDetails struct {
	MaskedEmail *string `json:"masked_email,omitempty"`
	PspID       string  `json:"psp_id"`
}

// NewPayPalDetails requires the PSP id; the masked email is optional.
func NewPayPalDetails(maskedEmail *string, pspID string) (PayPalDetails, error) {
	if pspID == "" {
		return PayPalDetails{}, fmt.Errorf("%w: missing psp id", ErrInvalidDetails)
	}
	return PayPalDetails{MaskedEmail: maskedEmail, PspID: pspID}, nil
}

func (d PayPalDetails) DetailsType() DetailsType { return DetailsTypePayPal }

func (d PayPalDetails) Equal(other Details) bool {
	o, ok := other.(PayPalDetails)
	if !ok || d.PspID != o.PspID {
		return false
	}
	if d.MaskedEmail == nil || o.MaskedEmail == nil {
		return d.MaskedEmail == o.MaskedEmail
	}
	return *d.MaskedEmail == *o.MaskedEmail
}

func (d PayPalDetails) sealedDetails() {}

// WithMaskedEmail returns a copy carrying the masked email reported by the
// notification.
func (d PayPalDetails) WithMaskedEmail(email string) PayPalDetails {
	d.MaskedEmail = &email
	return d
}

// GatewayInstrumentID extracts the provider-gateway instrument id when the
// details carry one.
func GatewayInstrumentID(d Details) string {
	if card, ok := d.(CardDetails); ok {
		return card.PaymentInstrumentGatewayID
	}
	return ""
}
