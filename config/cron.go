package config

type Cron struct {
	Enabled bool `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	// 六欄位（含秒）cron 表達式，預設每月 1 日 01:00 匯出當月班表
	ExportSpec string `mapstructure:"EXPORT_SPEC" json:"export_spec" yaml:"export_spec"`
}
