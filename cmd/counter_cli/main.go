package main

import (
	"context"
	"flag"
	"gactor/pkg/xcommon"
	"gactor/pkg/xlog"
	"gactor/pkg/xmsg"
	"gactor/pkg/xnet"
	"gactor/pkg/xregistry"
	"time"

	"go.uber.org/zap"
)

var (
	addr  = flag.String("addr", "127.0.0.1:7000", "server addr")
	path  = flag.String("path", "/counter", "websocket path")
	count = flag.Int("count", 10, "add one times")
)

func main() {
	flag.Parse()
	ctx := context.Background()
	defer xcommon.Recover(ctx)

	done := make(chan struct{})
	recv := 0

	cli, err := xnet.NewWSClient(ctx, xnet.WSCliArgs{
		Addr: *addr,
		Path: *path,
		OnConnect: func(ctx context.Context, sock xnet.Socket) interface{} {
			return nil
		},
		OnDisconnect: func(ctx context.Context, state interface{}) {
			xlog.Get(ctx).Info("Svr disconnect")
		},
		OnMsg: xmsg.ParseMsgWarp(func(ctx context.Context, arg xmsg.MsgArgs) error {
			if arg.Header.Cmd != xregistry.CMD_ADD_ONE {
				return nil
			}
			resp := &xregistry.CountResp{}
			if err := xregistry.Unmarshal(arg.Payload, resp); err != nil {
				return err
			}
			xlog.Get(ctx).Info("Recv count", zap.Int32("count", resp.Count))
			recv++
			if recv >= *count {
				close(done)
			}
			return nil
		}),
	})
	if err != nil {
		panic(err)
	}
	defer cli.Close(ctx)

	payload, err := xregistry.Marshal(&xregistry.AddOneReq{Delta: 1})
	if err != nil {
		panic(err)
	}

	for i := 0; i < *count; i++ {
		msg, err := xmsg.PackMsg(ctx, xmsg.PackMsgArgs{Seq: int32(i), Cmd: xregistry.CMD_ADD_ONE, Payload: payload})
		if err != nil {
			panic(err)
		}
		if err := cli.SendMsg(ctx, msg); err != nil {
			xlog.Get(ctx).Warn("Send msg failed.", zap.Any("err", err))
		}
	}

	select {
	case <-done:
		xlog.Get(ctx).Info("All responses received")
	case <-time.After(5 * time.Second):
		xlog.Get(ctx).Warn("Wait responses timeout", zap.Int("recv", recv))
	}
}
