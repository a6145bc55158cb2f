package main

import (
	"context"
	"gactor/pkg/xactor"
	"gactor/pkg/xcommon"
	"gactor/pkg/xenv"
	"gactor/pkg/xmsg"
	"gactor/pkg/xnet"
	"gactor/pkg/xregistry"
)

// 环境变量配置
type config struct {
	Addr string `env:"GACTOR_ADDR" envDefault:":7000"`
	Path string `env:"GACTOR_WS_PATH" envDefault:"/counter"`
}

func main() {
	ctx := context.Background()
	defer xcommon.Recover(ctx)

	conf := &config{}
	xenv.MustLoad(conf)

	// 每条websocket连接独占一个counter actor
	svr := xnet.NewWSServer(ctx, xnet.WSSvrArgs{
		Addr:         conf.Addr,
		Path:         conf.Path,
		OnConnect:    xregistry.OnConnect,
		OnDisconnect: xregistry.OnDisconnect,
		OnMsg:        xmsg.ParseMsgWarp(xregistry.OnMsg),
	})
	defer svr.Close(ctx)

	xcommon.UntilSignal(ctx)

	// 退出前打印actor运行计数
	xactor.DumpTable(ctx)
}
