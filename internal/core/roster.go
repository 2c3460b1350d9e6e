package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ─── Roster 常數 ───────────────────────────────────────────────────────────────

// 固定的四個工作地點，順序即匯出順序
var Workplaces = []string{"Studio Hispan", "Studio Press", "Nodal", "Engineer Room"}

// 固定的三個班別（顯示名稱）
var Shifts = []string{"Shift 1", "Shift 2", "Shift 3"}

// ShiftKey 回傳第 n 個班別（1-based）在班表 JSON 中的 key，例如 "shift1"
func ShiftKey(n int) string {
	return "shift" + strconv.Itoa(n)
}

// ShiftKeys 對應 Shifts 的 JSON key
func ShiftKeys() []string {
	keys := make([]string, len(Shifts))
	for i := range Shifts {
		keys[i] = ShiftKey(i + 1)
	}
	return keys
}

func IsWorkplace(name string) bool {
	for _, w := range Workplaces {
		if w == name {
			return true
		}
	}
	return false
}

// PeriodKey 組出班表期間 key，月份不補零："2024-2"
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// ParsePeriodKey 從最後一個 '-' 拆開 PeriodKey
func ParsePeriodKey(key string) (year, month int, err error) {
	i := strings.LastIndex(key, "-")
	if i <= 0 || i == len(key)-1 {
		return 0, 0, fmt.Errorf("invalid period key %q", key)
	}
	if year, err = strconv.Atoi(key[:i]); err != nil {
		return 0, 0, fmt.Errorf("invalid period year %q: %w", key, err)
	}
	if month, err = strconv.Atoi(key[i+1:]); err != nil {
		return 0, 0, fmt.Errorf("invalid period month %q: %w", key, err)
	}
	return year, month, nil
}

// ExportTrigger 匯出來源，寫入 fluentd 稽核紀錄
type ExportTrigger string

const (
	ExportTriggerAPI  ExportTrigger = "api"
	ExportTriggerCron ExportTrigger = "cron"
	ExportTriggerCLI  ExportTrigger = "cli"
)
