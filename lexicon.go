package tafqeet

// noun holds the forms of a counted noun required by numeral-noun agreement.
type noun struct {
	singular string // count of 1, and 11 or more
	dual     string // count of 2
	plural   string // count from 3 to 10
}

// scaleTier is a power-of-1000 grouping of digits.
type scaleTier struct {
	value uint64
	noun  noun
}

// scaleTiers lists the tiers above the units group, most significant first.
var scaleTiers = [...]scaleTier{
	{1_000_000_000_000, noun{"تريليون", "تريليونان", "تريليونات"}},
	{1_000_000_000, noun{"مليار", "ملياران", "مليارات"}},
	{1_000_000, noun{"مليون", "مليونان", "ملايين"}},
	{1_000, noun{"ألف", "ألفان", "آلاف"}},
}

var halalaNoun = noun{"هللة", "هللتان", "هللات"}

var ones = [10]string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
}

const tenWord = "عشرة"

// teens maps 11 through 19; none of them decomposes into ten and one.
var teens = [9]string{
	"أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر",
	"ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var tens = [10]string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

// hundreds are compound words; 100 and 200 are irregular.
var hundreds = [10]string{
	"", "مئة", "مئتان", "ثلاثمئة", "أربعمئة", "خمسمئة", "ستمئة", "سبعمئة", "ثمانمئة", "تسعمئة",
}

const (
	zeroWord      = "صفر"
	riyalPhrase   = "ريال سعودي"
	closingPhrase = "فقط لا غير"
	and           = " و"
)
