// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "flashcards"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultDatabaseDriver  = "postgres"
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultItemsPerPage    = 10
	DefaultMaxItemsPerPage = 100
	DefaultMaxRedraws      = 10
	DefaultAuthEnabled     = true
)
