package marker

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Undefined is printed in place of any value the record did not carry.
const Undefined = "undefined"

// NumberString prints a float the way a browser prints a number: integers without a
// fraction, shortest round-trip decimals, exponent form outside [1e-6, 1e21).
func NumberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatCases abbreviates counts above 1000 by cutting the last three characters of the
// printed number and appending "k+". 12345 gives "12k+", 1234567 gives "1234k+".
func FormatCases(cases *float64) string {
	if cases == nil {
		return Undefined
	}
	s := NumberString(*cases)
	if *cases > 1000 {
		s = s[:len(s)-3] + "k+"
	}
	return s
}

func formatCount(v *float64) string {
	if v == nil {
		return Undefined
	}
	return NumberString(*v)
}

func formatText(v *string) string {
	if v == nil {
		return Undefined
	}
	return *v
}

var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
		language.Japanese,
		language.Chinese,
	}
	localeMatcher = language.NewMatcher(supportedLocales)

	dateTimeLayouts = map[language.Tag]string{
		language.AmericanEnglish: "1/2/2006, 3:04:05 PM",
		language.BritishEnglish:  "02/01/2006, 15:04:05",
		language.German:          "2.1.2006, 15:04:05",
		language.French:          "02/01/2006 15:04:05",
		language.Spanish:         "2/1/2006, 15:04:05",
		language.Italian:         "2/1/2006, 15:04:05",
		language.Japanese:        "2006/1/2 15:04:05",
		language.Chinese:         "2006/1/2 15:04:05",
	}
)

// DateTimeLayout picks the date-time layout closest to a BCP 47 locale such as "en-US".
// Unknown or malformed locales fall back to American English.
func DateTimeLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return dateTimeLayouts[language.AmericanEnglish]
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return dateTimeLayouts[language.AmericanEnglish]
	}
	return dateTimeLayouts[supportedLocales[index]]
}

// maxDateMillis is the largest distance from the epoch a browser Date can represent.
const maxDateMillis = 8.64e15

// InvalidDate is printed for timestamps outside the representable range.
const InvalidDate = "Invalid Date"

// FormatUpdated renders an epoch-millisecond timestamp. A missing or zero value gives "".
func FormatUpdated(updated *float64, layout string, loc *time.Location) string {
	if updated == nil || *updated == 0 {
		return ""
	}
	if math.IsNaN(*updated) || math.Abs(*updated) > maxDateMillis {
		return InvalidDate
	}
	return time.UnixMilli(int64(*updated)).In(loc).Format(layout)
}
