package xregistry

import (
	"context"
	"fmt"
	"gactor/pkg/xactor"
	"gactor/pkg/xlog"

	"go.uber.org/zap"
)

func init() {
	// 注册协议
	Register(CMD_ADD_ONE, HandleWarp(AddOne))
}

var CMD_ADD_ONE = int32(1)

// 协议层结构(定长二进制)
type AddOneReq struct {
	Delta int32
}

type CountResp struct {
	Count int32
}

// actor层消息(json编解码跨隔离边界)
type CounterReq struct {
	Delta int32
}

type CounterResp struct {
	Count int32
}

// counter actor: 状态只在消息循环内被访问
type counterActor struct {
	count int32
}

func NewCounterActor(ctx context.Context, arg interface{}) (xactor.Actor[CounterReq, CounterResp], error) {
	c := &counterActor{}
	if init, ok := arg.(int32); ok {
		c.count = init
	}
	return c, nil
}

func (a *counterActor) Handle(ctx context.Context, msg CounterReq, link *xactor.Link[CounterResp]) {
	a.count += msg.Delta
	if err := link.Respond(CounterResp{Count: a.count}); err != nil {
		// 接收方已释放, 忽略
		xlog.Get(ctx).Debug("Respond failed.", zap.Any("err", err))
	}
}

// handler add one
// 连接读循环单持有者串行使用bridge, Get的FIFO配对成立
func AddOne(ctx context.Context, state *State, req *AddOneReq) error {
	if state.Bridge == nil {
		return fmt.Errorf("counter actor not running")
	}
	resp, err := state.Bridge.Get(CounterReq{Delta: req.Delta})
	if err != nil {
		return err
	}
	state.SendMsg(ctx, CMD_ADD_ONE, &CountResp{Count: resp.Count})
	return nil
}
