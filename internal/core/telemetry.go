package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricExportFilesTotal    MetricName = "export_files_total"
	MetricExportFailTotal     MetricName = "export_fail_total"
	MetricRateLimitTotal      MetricName = "rate_limited_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint  MetricLabelName = "endpoint"
	MetricLabelStatus    MetricLabelName = "status"
	MetricLabelReason    MetricLabelName = "reason"
	MetricLabelWorkplace MetricLabelName = "workplace"
)

// ==== Trace meta：以 struct tag 寫入 span attributes ====

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
	UrlPath           string `trace:"url.path"`
	UrlScheme         string `trace:"url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
}

type LoggerRequestMeta struct {
	Method     string            `trace:"http.method"`
	Path       string            `trace:"http.path"`
	FullPath   string            `trace:"http.route"`
	Query      string            `trace:"http.query"`
	Body       string            `trace:"http.body"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.content_length"`
	ClientIP   string            `trace:"http.client_ip"`
	Params     map[string]string `trace:"http.params"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.duration_ms"`
	Data       string  `trace:"response.data"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"http.client_ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"panic.duration_ms"`
	Message    string  `trace:"panic.message"`
	Stack      string  `trace:"panic.stack"`
	Status     int     `trace:"http.status_code"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	DurationMs float64 `trace:"error.duration_ms"`
	Status     int     `trace:"http.status_code"`
}

type TraceRateLimitMeta struct {
	Subject   string `trace:"ratelimit.subject"`
	Limit     int    `trace:"ratelimit.limit"`
	WindowSec int64  `trace:"ratelimit.window_sec"`
	Remaining int    `trace:"ratelimit.remaining"`
	TTL       int64  `trace:"ratelimit.ttl"`
	Op        string `trace:"ratelimit.op"`
}

type TraceExportMeta struct {
	Period    string `trace:"export.period"`
	Workplace string `trace:"export.workplace"`
	File      string `trace:"export.file"`
	Days      int    `trace:"export.days"`
}
