package tafqeet

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Convert returns the Arabic words for an amount of Saudi riyals,
// for example 150 becomes "مئة وخمسون ريال سعودي فقط لا غير".
// The amount is rounded to halalas using rounding half up.
// See also method [Amount.Words].
//
// Convert returns an error if:
//   - the amount is negative, NaN or Inf ([ErrInvalidAmount]);
//   - the integer part of the rounded amount is greater than [MaxRiyals]
//     ([ErrAmountOutOfRange]).
func Convert(amount float64) (string, error) {
	a, err := NewAmountFromFloat64(amount)
	if err != nil {
		return "", err
	}
	return a.Words(), nil
}

// ConvertDecimal is like [Convert] but takes a decimal amount.
func ConvertDecimal(amount decimal.Decimal) (string, error) {
	a, err := NewAmountFromDecimal(amount)
	if err != nil {
		return "", fmt.Errorf("converting decimal: %w", err)
	}
	return a.Words(), nil
}

// ConvertString is like [Convert] but takes a decimal string in the
// format accepted by [ParseAmount].
func ConvertString(amount string) (string, error) {
	a, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	return a.Words(), nil
}

// Cardinal returns the Arabic words for a whole number without any
// currency, for example 2000 becomes "ألفان" and 0 becomes "صفر".
//
// Cardinal returns [ErrAmountOutOfRange] if n is greater than [MaxRiyals].
func Cardinal(n uint64) (string, error) {
	if n > MaxRiyals {
		return "", fmt.Errorf("converting %v: %w", n, ErrAmountOutOfRange)
	}
	if n == 0 {
		return zeroWord, nil
	}
	return cardinal(n), nil
}

// Words returns the amount in Arabic words: the riyals, the halalas if
// there are any, and the closing phrase "فقط لا غير".
//
//	0.00    صفر ريال سعودي فقط لا غير
//	3000.00 ثلاثة آلاف ريال سعودي فقط لا غير
//	15.50   خمسة عشر ريال سعودي وخمسون هللة فقط لا غير
func (a Amount) Words() string {
	var b strings.Builder
	if r := a.Riyals(); r == 0 {
		b.WriteString(zeroWord)
	} else {
		b.WriteString(cardinal(r))
	}
	b.WriteByte(' ')
	b.WriteString(riyalPhrase)
	if h := a.Halalas(); h > 0 {
		b.WriteString(and)
		b.WriteString(counted(uint64(h), halalaNoun))
	}
	b.WriteByte(' ')
	b.WriteString(closingPhrase)
	return b.String()
}

// cardinal renders 0 < n <= MaxRiyals, joining the groups of every
// scale tier with the conjunction.
func cardinal(n uint64) string {
	parts := make([]string, 0, len(scaleTiers)+1)
	for _, t := range scaleTiers {
		if g := n / t.value % 1000; g > 0 {
			parts = append(parts, counted(g, t.noun))
		}
	}
	if g := n % 1000; g > 0 {
		parts = append(parts, convertThreeDigits(g))
	}
	return strings.Join(parts, and)
}

// counted renders a count from 1 to 999 of a noun:
//
//	1      singular alone        ألف
//	2      dual alone            ألفان
//	3-10   count and plural      ثلاثة آلاف
//	11+    count and singular    خمسة عشر ألف
func counted(count uint64, n noun) string {
	switch {
	case count == 1:
		return n.singular
	case count == 2:
		return n.dual
	case count <= 10:
		return convertThreeDigits(count) + " " + n.plural
	default:
		return convertThreeDigits(count) + " " + n.singular
	}
}

// convertThreeDigits renders 0 <= n <= 999, returning "" for 0.
// Tens come before ones, as in "ثلاثون وأربعة".
func convertThreeDigits(n uint64) string {
	parts := make([]string, 0, 2)
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	switch r := n % 100; {
	case r == 0:
		// nothing
	case r < 10:
		parts = append(parts, ones[r])
	case r == 10:
		parts = append(parts, tenWord)
	case r < 20:
		parts = append(parts, teens[r-11])
	default:
		w := tens[r/10]
		if o := r % 10; o > 0 {
			w += and + ones[o]
		}
		parts = append(parts, w)
	}
	return strings.Join(parts, and)
}
