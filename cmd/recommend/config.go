package main

import (
	"flag"
	"os"

	"movie_recommend/internal/logger"

	"gopkg.in/yaml.v3"
)

// AppConfig 对应 configs/recommend.yaml
type AppConfig struct {
	Log struct {
		Debug  bool   `yaml:"debug"`
		Format string `yaml:"format"` // console / json
	} `yaml:"log"`
	Paths struct {
		Dataset   string `yaml:"dataset"`   // 为空时使用内置示例数据
		History   string `yaml:"history"`   // JSONL 同伴历史，覆盖数据集中的 peers
		Pipelines string `yaml:"pipelines"` // 为空时使用内置 pipeline
	} `yaml:"paths"`
	Recommend struct {
		Scene        string `yaml:"scene"`
		LookbackDays int    `yaml:"lookback_days"`
		Explain      bool   `yaml:"explain"`
	} `yaml:"recommend"`
}

func loadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitAppConfig 初始化配置，优先级：命令行参数 > 配置文件 > 默认值
func InitAppConfig(args []string) (*AppConfig, error) {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	configPath := fs.String("config", "configs/recommend.yaml", "Path to config file")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	formatFlag := fs.String("log-format", "", "Log format: console or json")
	datasetFlag := fs.String("dataset", "", "Path to dataset yaml")
	historyFlag := fs.String("history", "", "Path to peer history jsonl")
	pipelinesFlag := fs.String("pipelines", "", "Path to pipelines.json")
	sceneFlag := fs.String("scene", "", "Pipeline scene")
	lookbackFlag := fs.Int("lookback", 0, "Only use peer history from the last N days")
	explainFlag := fs.Bool("explain", false, "Log every ranked candidate")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// 1. 默认值
	cfg := &AppConfig{}
	cfg.Log.Format = "console"
	cfg.Recommend.Scene = "movie"

	// 2. 配置文件，不存在时直接使用默认值
	if loaded, err := loadAppConfig(*configPath); err == nil {
		if loaded.Log.Debug {
			cfg.Log.Debug = true
		}
		if loaded.Log.Format != "" {
			cfg.Log.Format = loaded.Log.Format
		}
		if loaded.Paths.Dataset != "" {
			cfg.Paths.Dataset = loaded.Paths.Dataset
		}
		if loaded.Paths.History != "" {
			cfg.Paths.History = loaded.Paths.History
		}
		if loaded.Paths.Pipelines != "" {
			cfg.Paths.Pipelines = loaded.Paths.Pipelines
		}
		if loaded.Recommend.Scene != "" {
			cfg.Recommend.Scene = loaded.Recommend.Scene
		}
		if loaded.Recommend.LookbackDays > 0 {
			cfg.Recommend.LookbackDays = loaded.Recommend.LookbackDays
		}
		if loaded.Recommend.Explain {
			cfg.Recommend.Explain = true
		}
	} else {
		logger.Debug("Could not load config file '%s': %v. Using defaults or flags.", *configPath, err)
	}

	// 3. 命令行参数 (优先级最高)
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *formatFlag != "" {
		cfg.Log.Format = *formatFlag
	}
	if *datasetFlag != "" {
		cfg.Paths.Dataset = *datasetFlag
	}
	if *historyFlag != "" {
		cfg.Paths.History = *historyFlag
	}
	if *pipelinesFlag != "" {
		cfg.Paths.Pipelines = *pipelinesFlag
	}
	if *sceneFlag != "" {
		cfg.Recommend.Scene = *sceneFlag
	}
	if *lookbackFlag > 0 {
		cfg.Recommend.LookbackDays = *lookbackFlag
	}
	if *explainFlag {
		cfg.Recommend.Explain = true
	}

	return cfg, nil
}
