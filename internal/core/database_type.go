package core

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoCollection string
type RedisKey string
type FluentdSubTag string

// 班表文件的 _id
type RosterDocument string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoCollectionRosterDocuments MongoCollection = "roster_documents"
)

const (
	RosterDocumentEngineers RosterDocument = "engineers"
	RosterDocumentSchedules RosterDocument = "schedules"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName RedisKey = "shiftlist"   // 伺服器名稱
	RedisKeyExportRate RedisKey = "export_rate" // generate_excel 限流
)

// ─── Fluentd ───────────────────────────────────────────────────────────────────

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdExport   FluentdSubTag = "roster_export_log"
)
