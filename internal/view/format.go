package view

import (
	"time"

	"community-frontend/internal/model"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FormatDate 按本地时间格式化为 YYYY-MM-DD HH:mm:ss；无法解析时原样返回
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.In(time.Local).Format("2006-01-02 15:04:05")
		}
	}
	return raw
}

// Percent 把 0~1 的比例格式化为百分比数字，decimals 为保留的小数位
func Percent(ratio float64, decimals int) string {
	return model.FormatPercent(ratio, decimals)
}
