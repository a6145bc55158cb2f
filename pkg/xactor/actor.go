package xactor

import (
	"context"

	"gactor/pkg/xchan"
)

// 模拟隔离actor模式
// 特性:
//	 1.单协程消息循环, 状态无锁访问
//	 2.消息经codec序列化跨隔离边界, 不共享内存
//	 3.Bridge可Clone给多个持有者, 引用计数共享通道
//	 4.解耦回应(Respond)/关联请求(Request)两种模式

// 对端不存在(actor已退出或bridge全部释放), 不区分正常关闭还是panic
var ErrClosed = xchan.ErrClosed

// Actor: 隔离的状态 + 消息处理逻辑
// 整个生命周期仅由所属消息循环单协程访问, Handle串行执行不可重入
// In/Out必须可被codec序列化
type Actor[In, Out any] interface {
	Handle(ctx context.Context, msg In, link *Link[Out])
}

// 构造actor实例, Spawn时在消息循环启动前同步调用一次
// 失败作为可恢复的启动错误返回给调用方
type CreateFn[In, Out any] func(ctx context.Context, arg interface{}) (Actor[In, Out], error)
