package xregistry

import (
	"context"
	"fmt"
	"gactor/pkg/xactor"
	"gactor/pkg/xcodec"
	"gactor/pkg/xlog"
	"gactor/pkg/xmsg"
	"gactor/pkg/xnet"

	"go.uber.org/zap"
)

// handlers: cmd => func
var handlers = make(map[int32]HandleFunc)

// 协议序列化方案: 定长二进制(little endian)
var wireCodec xcodec.Codec = xcodec.Binary{}

type HandleFunc func(ctx context.Context, state *State, req []byte) error

// 注册回调
// 非线程安全，无锁处理, init内调用
func Register(cmd int32, fn HandleFunc) {
	if _, ok := handlers[cmd]; ok {
		panic(fmt.Sprintf("cmd[%d] is repeated.", cmd))
	}
	handlers[cmd] = fn
}

// 消息处理
func OnMsg(ctx context.Context, arg xmsg.MsgArgs) error {
	s := arg.State.(*State)

	// 业务处理
	handler := handlers[arg.Header.Cmd]
	if handler != nil {
		return handler(ctx, s, arg.Payload)
	} else {
		return fmt.Errorf("can not find handler[%d]", arg.Header.Cmd)
	}
}

// 建立连接: 每条连接独占一个counter actor
func OnConnect(ctx context.Context, sock xnet.Socket) interface{} {
	xlog.Get(ctx).Debug("Svr connect", zap.Any("addr", sock.RemoteAddr()))
	bridge, err := xactor.Spawn(ctx, NewCounterActor)
	if err != nil {
		// 启动失败可恢复: 连接保留, 请求时报错
		xlog.Get(ctx).Error("Spawn counter actor failed.", zap.Any("err", err))
		return &State{Sock: sock}
	}
	return &State{Sock: sock, Bridge: bridge}
}

// 断开连接: 释放bridge, actor随之退出
func OnDisconnect(ctx context.Context, state interface{}) {
	s := state.(*State)
	if s.Bridge != nil {
		s.Bridge.Drop()
	}
	xlog.Get(ctx).Debug("Svr disconnect", zap.Any("addr", s.Sock.RemoteAddr()))
}

// 函数包装：logic handler => HandleFunc
func HandleWarp[M1 any](fn func(ctx context.Context, state *State, req *M1) error) HandleFunc {
	return func(ctx context.Context, state *State, msg []byte) error {
		req := new(M1)

		// 反序列化
		if err := Unmarshal(msg, req); err != nil {
			return err
		}

		// 执行handler
		return fn(ctx, state, req)
	}
}

// 序列化(协议层方案)
func Marshal(data interface{}) ([]byte, error) {
	return wireCodec.Marshal(data)
}

// 反序列化(协议层方案)
func Unmarshal(msg []byte, data interface{}) error {
	return wireCodec.Unmarshal(msg, data)
}
