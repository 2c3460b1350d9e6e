package model

// ShiftAssignment 班別 key（shift1..shift3）-> 工程師名稱
type ShiftAssignment map[string]string

// WorkplaceSchedule 日期（"1".."31"）-> 當日排班
type WorkplaceSchedule map[string]ShiftAssignment

// Schedule 單一期間的班表：workplace -> 每日排班
type Schedule map[string]WorkplaceSchedule

// Schedules 整份 schedules.json：期間 key（"2024-2"）-> 班表
type Schedules map[string]Schedule
