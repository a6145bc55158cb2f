package xactor

import "sync/atomic"

// 单actor运行计数, 循环协程写入/观测侧读取
type actorStats struct {
	received  int64
	handled   int64
	responded int64
	decodeErr int64
}

func (s *actorStats) addReceived()  { atomic.AddInt64(&s.received, 1) }
func (s *actorStats) addHandled()   { atomic.AddInt64(&s.handled, 1) }
func (s *actorStats) addResponded() { atomic.AddInt64(&s.responded, 1) }
func (s *actorStats) addDecodeErr() { atomic.AddInt64(&s.decodeErr, 1) }

// 运行状态快照
type Stats struct {
	Name      string
	Received  int64 // 已接收输入
	Handled   int64 // 已执行Handle
	Responded int64 // 已产出回应
	DecodeErr int64 // 输入解码失败
	Pending   int   // 输入队列堆积
}

func (s *actorStats) snapshot(name string, pending int) Stats {
	return Stats{
		Name:      name,
		Received:  atomic.LoadInt64(&s.received),
		Handled:   atomic.LoadInt64(&s.handled),
		Responded: atomic.LoadInt64(&s.responded),
		DecodeErr: atomic.LoadInt64(&s.decodeErr),
		Pending:   pending,
	}
}
