package xchan

import (
	"sync"

	"github.com/pkg/errors"
)

// 对端全部释放后的统一错误, 不区分正常退出还是panic
var ErrClosed = errors.New("xchan: closed")

// 无界队列, 多生产者/多消费者
// 两端各自引用计数, "通道关闭"定义为对端计数归零
// 无界是已知的背压缺口: 生产速度超过消费速度时队列无限增长
type queue[T any] struct {
	mu        sync.Mutex
	cond      *sync.Cond
	items     []T
	senders   int
	receivers int
}

func (q *queue[T]) popLocked() T {
	item := q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	return item
}

// 创建通道, 返回发送端/接收端各一个引用
func New[T any]() (*Sender[T], *Receiver[T]) {
	q := &queue[T]{senders: 1, receivers: 1}
	q.cond = sync.NewCond(&q.mu)
	return &Sender[T]{q: q}, &Receiver[T]{q: q}
}

type Sender[T any] struct {
	q    *queue[T]
	once sync.Once
}

// 入队, 无界不阻塞; 接收端全部释放后返回ErrClosed
func (s *Sender[T]) Send(v T) error {
	q := s.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.receivers == 0 {
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.cond.Signal()
	return nil
}

// 复制发送端, 引用计数+1
func (s *Sender[T]) Clone() *Sender[T] {
	q := s.q
	q.mu.Lock()
	q.senders++
	q.mu.Unlock()
	return &Sender[T]{q: q}
}

// 释放发送端, 计数归零后唤醒全部阻塞中的接收者
// 重复Drop安全(只生效一次)
func (s *Sender[T]) Drop() {
	s.once.Do(func() {
		q := s.q
		q.mu.Lock()
		q.senders--
		if q.senders == 0 {
			q.cond.Broadcast()
		}
		q.mu.Unlock()
	})
}

type Receiver[T any] struct {
	q    *queue[T]
	once sync.Once
}

// 阻塞出队; 队列排空且发送端全部释放后返回ErrClosed
func (r *Receiver[T]) Receive() (T, error) {
	q := r.q
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && q.senders > 0 {
		q.cond.Wait()
	}
	if len(q.items) > 0 {
		return q.popLocked(), nil
	}
	var zero T
	return zero, ErrClosed
}

// 非阻塞出队
func (r *Receiver[T]) TryReceive() (T, bool) {
	q := r.q
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popLocked(), true
}

// 当前堆积数量
func (r *Receiver[T]) Len() int {
	q := r.q
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// 复制接收端, 引用计数+1
func (r *Receiver[T]) Clone() *Receiver[T] {
	q := r.q
	q.mu.Lock()
	q.receivers++
	q.mu.Unlock()
	return &Receiver[T]{q: q}
}

// 释放接收端; 最后一个引用释放时返回未投递的消息, 此后Send返回ErrClosed
// 不可与同一引用上阻塞中的Receive并发调用
func (r *Receiver[T]) Drop() []T {
	var leftover []T
	r.once.Do(func() {
		q := r.q
		q.mu.Lock()
		q.receivers--
		if q.receivers == 0 {
			leftover = q.items
			q.items = nil
			q.cond.Broadcast()
		}
		q.mu.Unlock()
	})
	return leftover
}
