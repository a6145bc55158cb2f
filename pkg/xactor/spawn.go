package xactor

import (
	"context"

	"gactor/pkg/xchan"
	"gactor/pkg/xcodec"
	"gactor/pkg/xlog"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 启动参数
type SpawnArgs struct {
	Name  string       // 注册名, 空则自动生成; 重名作为启动错误返回
	Arg   interface{}  // 传递给CreateFn的初始化参数
	Codec xcodec.Codec // 消息编解码, 默认json
}

// 启动actor, 立即返回调用方Bridge
// 消息循环运行在独立协程上, 生命周期与调用方栈无关
func Spawn[In, Out any](ctx context.Context, create CreateFn[In, Out]) (*Bridge[In, Out], error) {
	return SpawnWith(ctx, SpawnArgs{}, create)
}

// 带参数启动
func SpawnWith[In, Out any](ctx context.Context, arg SpawnArgs, create CreateFn[In, Out]) (*Bridge[In, Out], error) {
	if create == nil {
		return nil, errors.New("create fn is nil")
	}
	codec := arg.Codec
	if codec == nil {
		codec = xcodec.Default()
	}

	// create在循环启动前同步调用一次, 失败作为可恢复的启动错误返回
	actor, err := create(ctx, arg.Arg)
	if err != nil {
		return nil, errors.Wrap(err, "create actor")
	}

	inSender, inReceiver := xchan.New[envelope]()
	outSender, outReceiver := xchan.New[[]byte]()

	name := arg.Name
	if name == "" {
		name = genName()
	}
	stats := &actorStats{}
	actorCtx := &actorContext[In, Out]{
		name:  name,
		actor: actor,
		link: &Link[Out]{
			sender:   outSender,
			receiver: inReceiver,
			codec:    codec,
			stats:    stats,
			open:     true,
		},
		codec: codec,
		stats: stats,
	}

	// 注册actor
	if err := registerActor(name, &actorEntry{stats: stats, pending: inReceiver.Len}); err != nil {
		inSender.Drop()
		inReceiver.Drop()
		outSender.Drop()
		outReceiver.Drop()
		return nil, err
	}

	go actorCtx.run(xlog.NewContext(ctx, zap.String("actor", name)))

	return &Bridge[In, Out]{
		sender:   inSender,
		receiver: outReceiver,
		codec:    codec,
	}, nil
}
