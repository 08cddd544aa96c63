package shipment

import (
	"errors"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

const (
	// DefaultBaseFare is the flat fare charged on every shipment.
	DefaultBaseFare float64 = 50
	// DefaultPerKmRate is the fare charged per kilometer of great-circle distance.
	DefaultPerKmRate float64 = 10
)

// ErrTariffIsNotConstructed is returned when using an improperly
// initialized Tariff.
var ErrTariffIsNotConstructed = errs.NewValueIsRequiredError(
	"tariff must be created via NewTariff or DefaultTariff")

// Tariff is the linear fare model: price = baseFare + perKmRate * distance.
// Because baseFare is required to be positive, every price it produces is
// bounded below by the base fare.
type Tariff struct { //nolint:recvcheck //using for validation
	baseFare  float64
	perKmRate float64
	guard     guard.ConstructorGuard
}

// NewTariff creates a Tariff. The base fare must be positive and the
// per-kilometer rate non-negative.
func NewTariff(baseFare float64, perKmRate float64) (Tariff, error) {
	t := Tariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(t.setBaseFare(baseFare), t.setPerKmRate(perKmRate)); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

// DefaultTariff returns the tariff with the stock constants.
func DefaultTariff() Tariff {
	t, _ := NewTariff(DefaultBaseFare, DefaultPerKmRate)
	return t
}

// Validate checks that the Tariff was created through a constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// BaseFare returns the flat fare component.
func (t Tariff) BaseFare() float64 {
	return t.baseFare
}

// PerKmRate returns the per-kilometer fare component.
func (t Tariff) PerKmRate() float64 {
	return t.perKmRate
}

// Price computes the fare for the given distance in kilometers.
func (t Tariff) Price(distanceKm float64) (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if distanceKm < 0 {
		return 0, errs.NewValueIsInvalidError("distanceKm")
	}

	return t.baseFare + t.perKmRate*distanceKm, nil
}

func (t *Tariff) setBaseFare(baseFare float64) error {
	if baseFare <= 0 {
		return errs.NewValueIsInvalidError("baseFare")
	}

	t.baseFare = baseFare
	return nil
}

func (t *Tariff) setPerKmRate(perKmRate float64) error {
	if perKmRate < 0 {
		return errs.NewValueIsInvalidError("perKmRate")
	}

	t.perKmRate = perKmRate
	return nil
}
