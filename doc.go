/*
Package tafqeet writes amounts of Saudi riyals in Arabic words, the way
they appear on expense requests, vouchers and other financial documents.
It leverages the [decimal] package for exact decimal amounts and
interoperates with the [money] package.

# Features

  - Pure, deterministic conversion, safe for concurrent use by multiple goroutines
  - Numeral-noun agreement applied uniformly at every scale tier
  - Exact decimal rounding of halalas, with no binary floating-point surprises
  - Strict parsing of decimal strings at input boundaries

# Representation

An [Amount] is a non-negative decimal.Decimal with exactly two digits after
the decimal point: the integer part counts riyals, the fractional part
counts halalas.
Amounts are rounded to halalas using rounding half up, so 1.995 becomes 2.00.

# Supported Ranges

The integer part of an amount can be at most [MaxRiyals], which is
999,999,999,999,999, the largest value of the trillion scale tier.
Larger amounts are rejected, never truncated.

# Wording

Words are assembled from the most significant scale tier to the least.
Digit groups are joined with the conjunction "و", and inside a group tens
come before ones.
A scale noun agrees with its count:

	1      ألف
	2      ألفان
	3-10   ثلاثة آلاف
	11+    خمسة عشر ألف

The same rule applies to millions, billions, trillions and to halalas.
Every result ends with the phrase "فقط لا غير".

# Errors

Constructors and conversion functions return errors wrapping
[ErrInvalidAmount] for negative, non-finite or malformed input, and
[ErrAmountOutOfRange] for amounts above the supported range.
Use [errors.Is] to tell them apart.
*/
package tafqeet
