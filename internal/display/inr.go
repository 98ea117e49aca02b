package display

import (
	"math"
	"strconv"
)

// INR renders an amount as Indian rupees with en-IN digit grouping and
// no paise: 1234567 -> "₹12,34,567". The numeric value is never stored
// formatted; this is display-only.
func INR(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "₹" + groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian applies the Indian numbering system: the last three
// digits form one group, everything before them groups in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	out := tail
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
