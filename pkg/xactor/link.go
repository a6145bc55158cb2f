package xactor

import (
	"gactor/pkg/xchan"
	"gactor/pkg/xcodec"

	"github.com/pkg/errors"
)

// Link: actor侧句柄, 持有输入通道接收端/输出通道发送端
// 仅在Handle内可见, 仅由消息循环单协程访问
type Link[Out any] struct {
	sender   *xchan.Sender[[]byte]
	receiver *xchan.Receiver[envelope]
	codec    xcodec.Codec
	stats    *actorStats

	open  bool
	reply chan []byte // 当前处理中消息的私有回复通道, 非Request模式为nil
}

// 回应输出消息, best-effort: 接收方已全部释放时返回ErrClosed, actor可自行忽略
// Request模式下第一次Respond投递到请求方私有通道, 之后的进入共享输出通道
func (link *Link[Out]) Respond(msg Out) error {
	data, err := link.codec.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	link.stats.addResponded()
	if link.reply != nil {
		link.reply <- data
		link.reply = nil
		return nil
	}
	return link.sender.Send(data)
}

// 主动关闭: 不打断当前Handle, 循环下一次receive直接失败并退出
func (link *Link[Out]) Close() {
	link.open = false
}

// 内部receive: open=false时不再查看通道立即失败, 实现优雅关闭
func (link *Link[Out]) receive() (envelope, error) {
	if !link.open {
		return envelope{}, ErrClosed
	}
	return link.receiver.Receive()
}
