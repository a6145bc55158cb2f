package xlog

import "gactor/pkg/xenv"

// 环境变量读取日志配置, 解析失败使用默认值
func envConfig() logConfig {
	conf := logConfig{Level: "debug"}
	_ = xenv.EnvLoad(&conf)
	return conf
}
