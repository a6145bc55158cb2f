package xenv

import "github.com/caarlos0/env/v8"

/* example
type config struct {
	Addr     string        `env:"ADDR" envDefault:":7000"`
	Path     string        `env:"WS_PATH" envDefault:"/"`
	Duration time.Duration `env:"DURATION"`
}
*/

func EnvLoad(conf interface{}) error {
	return env.Parse(conf)
}

// 解析失败直接panic, 进程启动阶段使用
func MustLoad(conf interface{}) {
	if err := env.Parse(conf); err != nil {
		panic(err)
	}
}
