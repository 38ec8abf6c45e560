package config

type yamlConfig struct {
	DataSplit yamlDataSplit `yaml:"datasplit"`
}

type yamlDataSplit struct {
	TrainPct *float64 `yaml:"train_pct"`
	ValPct   *float64 `yaml:"val_pct"`
	TestPct  *float64 `yaml:"test_pct"`

	Output  string `yaml:"output"`
	Pattern string `yaml:"pattern"`

	Seed     *int64 `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	LabelExt string `yaml:"label_ext"`
	Manifest *bool  `yaml:"manifest"`
}
