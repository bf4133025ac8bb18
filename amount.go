package tafqeet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

var (
	// ErrInvalidAmount is returned for negative, non-finite or malformed amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountOutOfRange is returned when the riyals exceed [MaxRiyals].
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// MaxRiyals is the largest integer part that can be expressed in words.
// It is the largest value of the trillion scale tier, 10^15 - 1.
const MaxRiyals uint64 = 999_999_999_999_999

// halalaScale is the number of digits after the decimal point of an amount.
const halalaScale = 2

var (
	sar        = money.MustParseCurr("SAR")
	riyalLimit = decimal.MustNew(int64(MaxRiyals)+1, 0) // first integer that cannot be expressed
	halfHalala = decimal.MustNew(5, halalaScale+1)      // 0.005
	oneHalala  = decimal.MustNew(1, halalaScale)        // 0.01
)

// Amount type represents a non-negative amount of Saudi riyals rounded to
// whole halalas.
// Its zero value corresponds to 0.00.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	value decimal.Decimal // always non-negative, scale is always 2
}

// newAmountSafe rounds d to halalas using rounding half up and checks the range.
func newAmountSafe(d decimal.Decimal) (Amount, error) {
	if d.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w: %v is negative", ErrInvalidAmount, d)
	}
	if d.Cmp(riyalLimit) >= 0 {
		return Amount{}, fmt.Errorf("%w: %v exceeds %v", ErrAmountOutOfRange, d, MaxRiyals)
	}
	d, err := roundHalfUp(d)
	if err != nil {
		return Amount{}, err
	}
	// 999999999999999.995 carries into the next scale tier
	if d.Cmp(riyalLimit) >= 0 {
		return Amount{}, fmt.Errorf("%w: %v exceeds %v", ErrAmountOutOfRange, d, MaxRiyals)
	}
	return Amount{value: d}, nil
}

// roundHalfUp rounds a non-negative decimal to exactly two digits after
// the decimal point, rounding halves away from zero.
func roundHalfUp(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Scale() <= halalaScale {
		return d.Pad(halalaScale), nil
	}
	t := d.Trunc(halalaScale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v: %w", d, err)
	}
	if r.Cmp(halfHalala) >= 0 {
		t, err = t.Add(oneHalala)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("rounding %v: %w", d, err)
		}
	}
	return t.Pad(halalaScale), nil
}

// NewAmount returns an amount equal to coef / 10^scale, rounded to halalas.
//
// NewAmount returns an error if:
//   - the coefficient is negative;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result is greater than [MaxRiyals].
func NewAmount(coef int64, scale int) (Amount, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w: %w", ErrInvalidAmount, err)
	}
	a, err := newAmountSafe(d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
func MustNewAmount(coef int64, scale int) Amount {
	a, err := NewAmount(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns a (possibly rounded) amount equal to d.
//
// NewAmountFromDecimal returns an error if d is negative or its
// integer part is greater than [MaxRiyals].
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	return newAmountSafe(d)
}

// NewAmountFromMinorUnits converts a number of halalas to an amount.
func NewAmountFromMinorUnits(halalas int64) (Amount, error) {
	a, err := NewAmount(halalas, halalaScale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return a, nil
}

// NewAmountFromMoney converts a monetary amount denominated in Saudi riyals.
//
// NewAmountFromMoney returns an error if the currency is not SAR, or if the
// amount is negative or too large.
func NewAmountFromMoney(m money.Amount) (Amount, error) {
	if m.Curr() != sar {
		return Amount{}, fmt.Errorf("converting %v: %w: currency must be %v", m, ErrInvalidAmount, sar)
	}
	a, err := newAmountSafe(m.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return a, nil
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
// The float is taken at its shortest decimal representation, so 1.995
// is rounded as the decimal 1.995 and becomes 2.00.
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float is negative;
//   - the integer part of the result is greater than [MaxRiyals].
func NewAmountFromFloat64(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Amount{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidAmount, f)
	case f < 0:
		return Amount{}, fmt.Errorf("converting float: %w: %v is negative", ErrInvalidAmount, f)
	case f == 0: // also covers -0
		return Amount{}, nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	a, err := ParseAmount(s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// ParseAmount converts a decimal string to a (possibly rounded) amount.
// The string must consist of ASCII digits with an optional fractional part,
// for example "1234", "1234.5" or "0.125".
// Signs, exponents, spaces and digit separators are rejected.
func ParseAmount(s string) (Amount, error) {
	whole, frac, err := splitAmount(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	// Rounding half up only looks at the first digit past the halalas.
	if len(frac) > halalaScale+1 {
		frac = frac[:halalaScale+1]
	}
	if frac != "" {
		whole = whole + "." + frac
	}
	d, err := decimal.Parse(whole)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w: %w", s, ErrInvalidAmount, err)
	}
	a, err := newAmountSafe(d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return a, nil
}

// splitAmount validates s and returns its integer digits, with leading
// zeros removed, and its fractional digits.
func splitAmount(s string) (whole, frac string, err error) {
	if s == "" {
		return "", "", fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if s[0] == '-' {
		return "", "", fmt.Errorf("%w: negative", ErrInvalidAmount)
	}
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" || (hasPoint && frac == "") {
		return "", "", fmt.Errorf("%w: missing digits", ErrInvalidAmount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return "", "", fmt.Errorf("%w: unexpected character", ErrInvalidAmount)
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	if len(whole) > len(strconv.FormatUint(MaxRiyals, 10)) {
		return "", "", fmt.Errorf("%w: %v integer digits", ErrAmountOutOfRange, len(whole))
	}
	return whole, frac, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// Riyals returns the integer part of the amount.
func (a Amount) Riyals() uint64 {
	whole, _, _ := a.Decimal().Int64(halalaScale)
	return uint64(whole)
}

// Halalas returns the fractional part of the amount in halalas, from 0 to 99.
func (a Amount) Halalas() int {
	_, frac, _ := a.Decimal().Int64(halalaScale)
	return int(frac)
}

// Decimal returns the decimal representation of the amount.
// The result always has two digits after the decimal point.
func (a Amount) Decimal() decimal.Decimal {
	return a.value.Pad(halalaScale)
}

// Money returns the amount as a monetary value in Saudi riyals.
func (a Amount) Money() money.Amount {
	m, err := money.NewAmountFromDecimal(sar, a.Decimal())
	if err != nil {
		// at most 15 integer digits always fit
		panic(fmt.Sprintf("NewAmountFromDecimal(%v, %v) failed: %v", sar, a.Decimal(), err))
	}
	return m
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String implements the [fmt.Stringer] interface and returns the amount
// with two digits after the decimal point, for example "1234.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Decimal().String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
