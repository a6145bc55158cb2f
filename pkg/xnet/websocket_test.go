package xnet_test

import (
	"context"
	"fmt"
	"gactor/pkg/xlog"
	"gactor/pkg/xnet"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWebsocket(t *testing.T) {
	ctx := context.Background()
	addr := ":9902"
	path := "/"
	var wg sync.WaitGroup

	// 回显服务
	svr := xnet.NewWSServer(ctx, xnet.WSSvrArgs{Addr: addr, Path: path,
		OnConnect: func(ctx context.Context, sock xnet.Socket) interface{} { return sock },
		OnDisconnect: func(ctx context.Context, state interface{}) {
			xlog.Get(ctx).Info("Cli disconnect")
		},
		OnMsg: func(ctx context.Context, state interface{}, msg []byte) (int, error) {
			sock := state.(xnet.Socket)
			return len(msg), sock.SendMsg(ctx, msg)
		},
	})
	defer svr.Close(ctx)

	time.Sleep(1 * time.Second)

	cli, err := xnet.NewWSClient(ctx, xnet.WSCliArgs{
		Addr:      addr,
		Path:      path,
		OnConnect: func(ctx context.Context, sock xnet.Socket) interface{} { return nil },
		OnDisconnect: func(ctx context.Context, state interface{}) {
			xlog.Get(ctx).Info("Svr disconnect")
		},
		OnMsg: func(ctx context.Context, state interface{}, msg []byte) (int, error) {
			defer wg.Done()
			xlog.Get(ctx).Info("Cli recv msg", zap.String("msg", string(msg)))
			return len(msg), nil
		},
	})
	if err != nil {
		t.Fatalf("new client failed %v", err)
	}
	defer cli.Close(ctx)

	for i := 0; i < 10; i++ {
		if err := cli.SendMsg(ctx, []byte(fmt.Sprintf("cli data %v", i))); err != nil {
			t.Fatalf("send failed %v", err)
		}
		wg.Add(1)
	}

	wg.Wait()
}
