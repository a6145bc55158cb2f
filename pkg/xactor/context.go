package xactor

import (
	"context"
	"runtime/debug"

	"gactor/pkg/xcodec"
	"gactor/pkg/xlog"

	"go.uber.org/zap"
)

// 消息循环: 一个actor实例配对一个link, 1:1不共享
// 两状态(运行/终止), 终止为吸收态: 循环退出即释放通道两端并注销
type actorContext[In, Out any] struct {
	name  string
	actor Actor[In, Out]
	link  *Link[Out]
	codec xcodec.Codec
	stats *actorStats
}

func (c *actorContext[In, Out]) run(ctx context.Context) {
	defer c.teardown(ctx)

	// Handle内panic仅终止当前actor, 对外表现为后续ErrClosed
	defer func() {
		if r := recover(); r != nil {
			xlog.Get(ctx).Sugar().Errorf("Actor panic %v stack %v", r, string(debug.Stack()))
		}
	}()

	for {
		env, err := c.link.receive()
		if err != nil {
			// 输入通道关闭或主动Close, 循环终止
			break
		}
		c.stats.addReceived()

		var msg In
		if err := c.codec.Unmarshal(env.data, &msg); err != nil {
			// 解码失败是编程/版本不匹配错误: 丢弃该消息并大声记录, 不影响后续消息
			c.stats.addDecodeErr()
			xlog.Get(ctx).Error("Unmarshal input failed.", zap.Any("err", err))
			if env.reply != nil {
				close(env.reply)
			}
			continue
		}

		c.link.reply = env.reply
		c.actor.Handle(ctx, msg, c.link)
		c.stats.addHandled()

		if c.link.reply != nil {
			// handler未回应, 解除请求方阻塞
			close(c.link.reply)
			c.link.reply = nil
		}
	}
}

func (c *actorContext[In, Out]) teardown(ctx context.Context) {
	// panic时当前消息的回复通道可能未结清
	if c.link.reply != nil {
		close(c.link.reply)
		c.link.reply = nil
	}

	// 先释放输入接收端: 此后Send统一返回ErrClosed, 已入队未处理的消息不再投递
	leftover := c.link.receiver.Drop()
	for _, env := range leftover {
		if env.reply != nil {
			close(env.reply)
		}
	}

	// 再释放输出发送端: 阻塞中的Bridge.Receive随即感知ErrClosed
	c.link.sender.Drop()

	deregisterActor(c.name)
	xlog.Get(ctx).Debug("Actor loop exit.")
}
