package config

const (
	StorageDriverFile  = "file"
	StorageDriverMongo = "mongo"
)

type Storage struct {
	// file | mongo
	Driver string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
	// engineers.json / schedules.json 與匯出的 xlsx 都放在這裡
	DataDir string `mapstructure:"DATA_DIR" json:"data_dir" yaml:"data_dir"`
}
