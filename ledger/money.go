package ledger

import (
	"strconv"
	"strings"
)

// FormatAmountInput 去掉非数字字符并按千位插入 "."，用于金额输入框回显
func FormatAmountInput(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return groupThousands(b.String())
}

// ParseAmount 去掉千位分隔符后取前导数字，非数字或空输入返回 0
func ParseAmount(value string) int64 {
	s := strings.TrimSpace(strings.ReplaceAll(value, ".", ""))
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatCLP 按 es-CL 习惯格式化金额，如 $3.500、-$3.500
func FormatCLP(v int64) string {
	if v < 0 {
		// 取反前单独处理，避免最小值溢出
		return "-$" + groupThousands(strings.TrimPrefix(strconv.FormatInt(v, 10), "-"))
	}
	return "$" + groupThousands(strconv.FormatInt(v, 10))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
