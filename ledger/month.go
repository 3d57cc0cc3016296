package ledger

import (
	"fmt"
	"time"
)

// MonthLayout 月份参数格式
const MonthLayout = "2006-01"

// MonthRange 返回 anchor 所在月份的第一天 00:00:00 和最后一天 23:59:59，两端均包含
func MonthRange(anchor time.Time) (time.Time, time.Time) {
	from := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}

// ShiftMonth 返回相隔 offset 个月的月份第一天
func ShiftMonth(anchor time.Time, offset int) time.Time {
	return time.Date(anchor.Year(), anchor.Month()+time.Month(offset), 1, 0, 0, 0, 0, anchor.Location())
}

// ParseMonth 解析 2006-01 格式的月份
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month 格式应为 2024-01", ErrInvalidInput)
	}
	return t, nil
}

// FormatMonth 格式化为 2006-01
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}
