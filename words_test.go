package tafqeet

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/govalues/decimal"
)

func TestConvert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount float64
			want   string
		}{
			// Zero
			{0, "صفر ريال سعودي فقط لا غير"},
			// Units, tens and teens
			{1, "واحد ريال سعودي فقط لا غير"},
			{2, "اثنان ريال سعودي فقط لا غير"},
			{10, "عشرة ريال سعودي فقط لا غير"},
			{11, "أحد عشر ريال سعودي فقط لا غير"},
			{12, "اثنا عشر ريال سعودي فقط لا غير"},
			{19, "تسعة عشر ريال سعودي فقط لا غير"},
			{20, "عشرون ريال سعودي فقط لا غير"},
			{21, "عشرون وواحد ريال سعودي فقط لا غير"},
			{99, "تسعون وتسعة ريال سعودي فقط لا غير"},
			// Hundreds
			{100, "مئة ريال سعودي فقط لا غير"},
			{150, "مئة وخمسون ريال سعودي فقط لا غير"},
			{200, "مئتان ريال سعودي فقط لا غير"},
			{310, "ثلاثمئة وعشرة ريال سعودي فقط لا غير"},
			{999, "تسعمئة وتسعون وتسعة ريال سعودي فقط لا غير"},
			// Thousands
			{1000, "ألف ريال سعودي فقط لا غير"},
			{2000, "ألفان ريال سعودي فقط لا غير"},
			{3000, "ثلاثة آلاف ريال سعودي فقط لا غير"},
			{10000, "عشرة آلاف ريال سعودي فقط لا غير"},
			{11000, "أحد عشر ألف ريال سعودي فقط لا غير"},
			{15000, "خمسة عشر ألف ريال سعودي فقط لا غير"},
			{100000, "مئة ألف ريال سعودي فقط لا غير"},
			{1001, "ألف وواحد ريال سعودي فقط لا غير"},
			{2021, "ألفان وعشرون وواحد ريال سعودي فقط لا غير"},
			{1234, "ألف ومئتان وثلاثون وأربعة ريال سعودي فقط لا غير"},
			// Millions and above
			{1000000, "مليون ريال سعودي فقط لا غير"},
			{1000001, "مليون وواحد ريال سعودي فقط لا غير"},
			{2000000, "مليونان ريال سعودي فقط لا غير"},
			{5000000, "خمسة ملايين ريال سعودي فقط لا غير"},
			{12000000, "اثنا عشر مليون ريال سعودي فقط لا غير"},
			{2500000, "مليونان وخمسمئة ألف ريال سعودي فقط لا غير"},
			{1000000000, "مليار ريال سعودي فقط لا غير"},
			{3000000000, "ثلاثة مليارات ريال سعودي فقط لا غير"},
			{1000000000000, "تريليون ريال سعودي فقط لا غير"},
			{2000000000000, "تريليونان ريال سعودي فقط لا غير"},
			{7000000000000, "سبعة تريليونات ريال سعودي فقط لا غير"},
			{1001001001001, "تريليون ومليار ومليون وألف وواحد ريال سعودي فقط لا غير"},
			// Halalas
			{0.01, "صفر ريال سعودي وهللة فقط لا غير"},
			{0.02, "صفر ريال سعودي وهللتان فقط لا غير"},
			{0.05, "صفر ريال سعودي وخمسة هللات فقط لا غير"},
			{0.1, "صفر ريال سعودي وعشرة هللات فقط لا غير"},
			{0.5, "صفر ريال سعودي وخمسون هللة فقط لا غير"},
			{1234.56, "ألف ومئتان وثلاثون وأربعة ريال سعودي وخمسون وستة هللة فقط لا غير"},
			{15.5, "خمسة عشر ريال سعودي وخمسون هللة فقط لا غير"},
			// Rounding
			{1.995, "اثنان ريال سعودي فقط لا غير"},
			{0.004, "صفر ريال سعودي فقط لا غير"},
			{0.999, "واحد ريال سعودي فقط لا غير"},
		}
		for _, tt := range tests {
			got, err := Convert(tt.amount)
			if err != nil {
				t.Errorf("Convert(%v) failed: %v", tt.amount, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Convert(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			amount  float64
			wantErr error
		}{
			"negative 1": {-1, ErrInvalidAmount},
			"negative 2": {-0.001, ErrInvalidAmount},
			"nan":        {math.NaN(), ErrInvalidAmount},
			"inf 1":      {math.Inf(1), ErrInvalidAmount},
			"inf 2":      {math.Inf(-1), ErrInvalidAmount},
			"overflow":   {1e15, ErrAmountOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got, err := Convert(tt.amount)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Convert(%v) = %v, want %v", tt.amount, err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Convert(%v) = %q, want empty string", tt.amount, got)
				}
			})
		}
	})
}

func TestConvert_Ceiling(t *testing.T) {
	want := "تسعمئة وتسعون وتسعة تريليون وتسعمئة وتسعون وتسعة مليار " +
		"وتسعمئة وتسعون وتسعة مليون وتسعمئة وتسعون وتسعة ألف " +
		"وتسعمئة وتسعون وتسعة ريال سعودي وتسعون وتسعة هللة فقط لا غير"

	got, err := ConvertString("999999999999999.99")
	if err != nil {
		t.Fatalf("ConvertString(%q) failed: %v", "999999999999999.99", err)
	}
	if got != want {
		t.Errorf("ConvertString(%q) = %q, want %q", "999999999999999.99", got, want)
	}

	if _, err := Convert(float64(MaxRiyals)); err != nil {
		t.Errorf("Convert(%v) failed: %v", float64(MaxRiyals), err)
	}
	if _, err := Convert(float64(MaxRiyals) + 1); !errors.Is(err, ErrAmountOutOfRange) {
		t.Errorf("Convert(%v) = %v, want %v", float64(MaxRiyals)+1, err, ErrAmountOutOfRange)
	}
	if _, err := ConvertString("999999999999999.995"); !errors.Is(err, ErrAmountOutOfRange) {
		t.Errorf("ConvertString(%q) = %v, want %v", "999999999999999.995", err, ErrAmountOutOfRange)
	}
}

func TestConvert_DecimalCarry(t *testing.T) {
	tests := []struct {
		carried, whole float64
	}{
		{0.995, 1},
		{1.995, 2},
		{9.999, 10},
		{999.995, 1000},
		{1999.995, 2000},
	}
	for _, tt := range tests {
		got, err := Convert(tt.carried)
		if err != nil {
			t.Errorf("Convert(%v) failed: %v", tt.carried, err)
			continue
		}
		want, err := Convert(tt.whole)
		if err != nil {
			t.Errorf("Convert(%v) failed: %v", tt.whole, err)
			continue
		}
		if got != want {
			t.Errorf("Convert(%v) = %q, want %q", tt.carried, got, want)
		}
		if strings.Contains(got, halalaNoun.singular) {
			t.Errorf("Convert(%v) = %q, contains halalas", tt.carried, got)
		}
	}
}

func TestConvert_ClosingPhrase(t *testing.T) {
	suffix := " " + closingPhrase
	for _, f := range []float64{0, 0.01, 1, 12.5, 1000, 1e6 + 0.75, 123456789.12, float64(MaxRiyals)} {
		got, err := Convert(f)
		if err != nil {
			t.Errorf("Convert(%v) failed: %v", f, err)
			continue
		}
		if !strings.HasSuffix(got, suffix) {
			t.Errorf("Convert(%v) = %q, does not end with %q", f, got, suffix)
		}
		if strings.Count(got, closingPhrase) != 1 {
			t.Errorf("Convert(%v) = %q, closing phrase repeated", f, got)
		}
		if strings.Contains(got, "  ") || strings.HasPrefix(got, " ") {
			t.Errorf("Convert(%v) = %q, contains stray spaces", f, got)
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	const amount = 987654321.09
	want, err := Convert(amount)
	if err != nil {
		t.Fatalf("Convert(%v) failed: %v", amount, err)
	}
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Convert(amount)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if got != want {
			t.Errorf("Convert(%v) call %v = %q, want %q", amount, i, got, want)
		}
	}
}

func TestConvertDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "صفر ريال سعودي فقط لا غير"},
			{"1.995", "اثنان ريال سعودي فقط لا غير"},
			{"1000.000", "ألف ريال سعودي فقط لا غير"},
			{"3000.02", "ثلاثة آلاف ريال سعودي وهللتان فقط لا غير"},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.d)
			got, err := ConvertDecimal(d)
			if err != nil {
				t.Errorf("ConvertDecimal(%v) failed: %v", d, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ConvertDecimal(%v) = %q, want %q", d, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d       string
			wantErr error
		}{
			"negative": {"-5", ErrInvalidAmount},
			"overflow": {"1000000000000000", ErrAmountOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := decimal.MustParse(tt.d)
				_, err := ConvertDecimal(d)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ConvertDecimal(%v) = %v, want %v", d, err, tt.wantErr)
				}
			})
		}
	})
}

func TestConvertString(t *testing.T) {
	got, err := ConvertString("1234.56")
	if err != nil {
		t.Fatalf("ConvertString(%q) failed: %v", "1234.56", err)
	}
	want := "ألف ومئتان وثلاثون وأربعة ريال سعودي وخمسون وستة هللة فقط لا غير"
	if got != want {
		t.Errorf("ConvertString(%q) = %q, want %q", "1234.56", got, want)
	}

	for _, s := range []string{"", "1,234.56", "-1", "1e3", "abc"} {
		if _, err := ConvertString(s); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ConvertString(%q) = %v, want %v", s, err, ErrInvalidAmount)
		}
	}
}

func TestCardinal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			n    uint64
			want string
		}{
			{0, "صفر"},
			{1, "واحد"},
			{13, "ثلاثة عشر"},
			{45, "أربعون وخمسة"},
			{200, "مئتان"},
			{2000, "ألفان"},
			{4000, "أربعة آلاف"},
			{20000, "عشرون ألف"},
			{1000010, "مليون وعشرة"},
		}
		for _, tt := range tests {
			got, err := Cardinal(tt.n)
			if err != nil {
				t.Errorf("Cardinal(%v) failed: %v", tt.n, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Cardinal(%v) = %q, want %q", tt.n, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, n := range []uint64{MaxRiyals + 1, math.MaxUint64} {
			if _, err := Cardinal(n); !errors.Is(err, ErrAmountOutOfRange) {
				t.Errorf("Cardinal(%v) = %v, want %v", n, err, ErrAmountOutOfRange)
			}
		}
	})
}

func TestCardinal_ScaleWords(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		// Thousands
		{999_000, "تسعمئة وتسعون وتسعة ألف"},
		// Millions
		{1_000_000, "مليون"},
		{2_000_000, "مليونان"},
		{3_000_000, "ثلاثة ملايين"},
		{10_000_000, "عشرة ملايين"},
		{11_000_000, "أحد عشر مليون"},
		{100_000_000, "مئة مليون"},
		{999_000_000, "تسعمئة وتسعون وتسعة مليون"},
		// Billions
		{1_000_000_000, "مليار"},
		{2_000_000_000, "ملياران"},
		{5_000_000_000, "خمسة مليارات"},
		{11_000_000_000, "أحد عشر مليار"},
		{25_000_000_000, "عشرون وخمسة مليار"},
		{200_000_000_000, "مئتان مليار"},
		// Trillions
		{4_000_000_000_000, "أربعة تريليونات"},
		{12_000_000_000_000, "اثنا عشر تريليون"},
		// Mixed tiers
		{2_003_000_011, "ملياران وثلاثة آلاف وأحد عشر"},
		{7_010_000_000, "سبعة مليارات وعشرة ملايين"},
	}
	for _, tt := range tests {
		got, err := Cardinal(tt.n)
		if err != nil {
			t.Errorf("Cardinal(%v) failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Cardinal(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

// TestCardinal_ScaleAgreement checks the numeral-noun agreement of every
// count bucket at every scale tier.
func TestCardinal_ScaleAgreement(t *testing.T) {
	counts := []uint64{1, 2, 3, 4, 7, 10, 11, 12, 19, 20, 99, 100, 101, 110, 111, 200, 999}
	for _, tier := range scaleTiers {
		for _, c := range counts {
			var want string
			switch {
			case c == 1:
				want = tier.noun.singular
			case c == 2:
				want = tier.noun.dual
			case c <= 10:
				want = convertThreeDigits(c) + " " + tier.noun.plural
			default:
				want = convertThreeDigits(c) + " " + tier.noun.singular
			}
			got, err := Cardinal(c * tier.value)
			if err != nil {
				t.Errorf("Cardinal(%v) failed: %v", c*tier.value, err)
				continue
			}
			if got != want {
				t.Errorf("Cardinal(%v) = %q, want %q", c*tier.value, got, want)
			}
		}
	}
}

func TestAmount_Words_HalalaAgreement(t *testing.T) {
	tests := []struct {
		halalas int64
		want    string
	}{
		{1, "هللة"},
		{2, "هللتان"},
		{3, "ثلاثة هللات"},
		{10, "عشرة هللات"},
		{11, "أحد عشر هللة"},
		{25, "عشرون وخمسة هللة"},
		{99, "تسعون وتسعة هللة"},
	}
	for _, tt := range tests {
		a, err := NewAmountFromMinorUnits(100 + tt.halalas)
		if err != nil {
			t.Fatalf("NewAmountFromMinorUnits(%v) failed: %v", 100+tt.halalas, err)
		}
		want := "واحد ريال سعودي و" + tt.want + " فقط لا غير"
		if got := a.Words(); got != want {
			t.Errorf("%q.Words() = %q, want %q", a, got, want)
		}
	}
}

func TestConvertThreeDigits(t *testing.T) {
	if got := convertThreeDigits(0); got != "" {
		t.Errorf("convertThreeDigits(0) = %q, want empty string", got)
	}
	// every value in [1, 999] renders without empty parts
	for n := uint64(1); n <= 999; n++ {
		got := convertThreeDigits(n)
		if got == "" || strings.HasSuffix(got, " و") || strings.Contains(got, "و و") {
			t.Errorf("convertThreeDigits(%v) = %q", n, got)
		}
	}
}
