// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "knowledge_keep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultAppReviewLimit = 20
	DefaultAppTrendDays   = 30
)
