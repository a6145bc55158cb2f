package xactor

import (
	"context"

	"gactor/pkg/xchan"
	"gactor/pkg/xcodec"

	"github.com/pkg/errors"
)

// Bridge: 调用方句柄, 持有输入通道发送端/输出通道接收端
// Clone给多个持有者时共享同一对通道(引用计数), 并非各自独立
// 全部Clone释放后actor的消息循环感知关闭并退出
type Bridge[In, Out any] struct {
	sender   *xchan.Sender[envelope]
	receiver *xchan.Receiver[[]byte]
	codec    xcodec.Codec
}

// 发送输入消息, 不阻塞(无界队列)
// actor已退出(正常关闭或panic, 不区分)时返回ErrClosed
func (b *Bridge[In, Out]) Send(msg In) error {
	data, err := b.codec.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal input")
	}
	return b.sender.Send(envelope{data: data})
}

// 阻塞等待一条输出消息, 输出按actor产出顺序投递
// actor已退出且无存量消息时返回ErrClosed
func (b *Bridge[In, Out]) Receive() (Out, error) {
	var out Out
	data, err := b.receiver.Receive()
	if err != nil {
		return out, err
	}
	if err := b.codec.Unmarshal(data, &out); err != nil {
		return out, errors.Wrap(err, "unmarshal output")
	}
	return out, nil
}

// 请求并阻塞等待回应(Send+Receive)
// 警告: 多个Clone并发Get时, 共享输出流仅按FIFO配对, 回应可能属于其他Clone的请求
// 单一持有者串行使用时一一对应; 并发场景请使用Request
func (b *Bridge[In, Out]) Get(msg In) (Out, error) {
	var out Out
	if err := b.Send(msg); err != nil {
		return out, err
	}
	return b.Receive()
}

// 携带私有回复通道的请求, 回应只会投递给当前调用方, 与其他Clone无竞争
// handler未Respond或actor中途退出时返回ErrClosed
// ctx仅取消本次等待, 不会中断已入队的消息处理
func (b *Bridge[In, Out]) Request(ctx context.Context, msg In) (Out, error) {
	var out Out
	data, err := b.codec.Marshal(msg)
	if err != nil {
		return out, errors.Wrap(err, "marshal input")
	}
	reply := make(chan []byte, 1)
	if err := b.sender.Send(envelope{data: data, reply: reply}); err != nil {
		return out, err
	}
	select {
	case <-ctx.Done():
		return out, errors.Wrap(ctx.Err(), "cancel request")
	case respData, ok := <-reply:
		if !ok {
			return out, ErrClosed
		}
		if err := b.codec.Unmarshal(respData, &out); err != nil {
			return out, errors.Wrap(err, "unmarshal output")
		}
		return out, nil
	}
}

// 复制句柄, 通道两端引用计数+1
// N个Clone喂同一个actor, 取同一条回应流
func (b *Bridge[In, Out]) Clone() *Bridge[In, Out] {
	return &Bridge[In, Out]{
		sender:   b.sender.Clone(),
		receiver: b.receiver.Clone(),
		codec:    b.codec,
	}
}

// 释放句柄, 重复调用安全
func (b *Bridge[In, Out]) Drop() {
	b.sender.Drop()
	b.receiver.Drop()
}
