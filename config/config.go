package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Storage   Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
	Cron      Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
}

// ApplyDefaults 補上未設定欄位的預設值（viper 只讀環境變數時多數欄位為零值）
func (c *Configuration) ApplyDefaults() *Configuration {
	if c.App.Name == "" {
		c.App.Name = "shiftlist"
	}
	if c.App.Port == 0 {
		c.App.Port = 8000
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverFile
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.MongoDB.Database == "" {
		c.MongoDB.Database = "shiftlist"
	}
	if c.Redis.ExportPerMinute <= 0 {
		c.Redis.ExportPerMinute = 10
	}
	if c.Cron.ExportSpec == "" {
		c.Cron.ExportSpec = "0 0 1 1 * *"
	}
	return c
}
