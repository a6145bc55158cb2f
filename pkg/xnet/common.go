package xnet

import (
	"context"
	"net"
	"time"
)

const (
	writeTimeout = 10 * time.Second // 写超时时间
	readTimeout  = 10 * time.Second // 读超时时间

	writeChanLimit = 200   // 写channel大小
	maxMessageSize = 65536 // 单条消息上限
)

// 网络连接抽象, 回调层只依赖该接口
type Socket interface {
	SendMsg(ctx context.Context, msg []byte) error
	RemoteAddr() net.Addr
}

// 消息处理
type OnHandlerOnce func(ctx context.Context, state interface{}, msg []byte) (int, error)

// 建立链接
type OnConnect func(ctx context.Context, sock Socket) interface{}

// 关闭链接
type OnDisconnect func(ctx context.Context, state interface{})
