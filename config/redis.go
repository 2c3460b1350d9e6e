package config

type Redis struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// 每個 client IP 每分鐘可呼叫 generate_excel 的次數
	ExportPerMinute int `mapstructure:"EXPORT_PER_MINUTE" json:"export_per_minute" yaml:"export_per_minute"`
}
