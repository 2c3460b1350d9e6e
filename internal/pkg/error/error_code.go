package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY   = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS = 40001 // 400 - 無效的請求參數
	INVALID_PERIOD     = 40002 // 400 - 年月不合法

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND          = 40400 // 404 - 資源未找到
	SCHEDULE_NOT_FOUND = 40401 // 404 - 該期間沒有排班資料
	FILE_NOT_FOUND     = 40402 // 404 - 匯出檔案不存在

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	STORAGE_ERROR       = 50001 // 500 - 儲存層寫入失敗
	EXPORT_ERROR        = 50002 // 500 - 產生試算表失敗
	SERVICE_UNAVAILABLE = 50300 // 503 - 服務暫停
)
