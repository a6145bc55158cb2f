package xactor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"gactor/pkg/xcommon"
)

// actor注册表, 仅做观测(命名查询/运行计数), 不持有actor本体
var (
	mu      sync.RWMutex
	actors  = make(map[string]*actorEntry)
	nameSeq int64
)

type actorEntry struct {
	stats   *actorStats
	pending func() int
}

func genName() string {
	return "actor-" + strconv.FormatInt(atomic.AddInt64(&nameSeq, 1), 10)
}

func registerActor(name string, entry *actorEntry) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := actors[name]; ok {
		return fmt.Errorf("actor[%v] is repeated", name)
	}
	actors[name] = entry
	return nil
}

// 循环终止时注销
func deregisterActor(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(actors, name)
}

// 查询运行状态, actor已退出返回error
func Lookup(name string) (Stats, error) {
	mu.RLock()
	entry := actors[name]
	mu.RUnlock()
	if entry == nil {
		return Stats{}, fmt.Errorf("actor[%v] is nil", name)
	}
	return entry.stats.snapshot(name, entry.pending()), nil
}

// 存活actor数量
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(actors)
}

// 打印全部存活actor的运行计数
func DumpTable(ctx context.Context) {
	mu.RLock()
	snapshots := make([]Stats, 0, len(actors))
	for name, entry := range actors {
		snapshots = append(snapshots, entry.stats.snapshot(name, entry.pending()))
	}
	mu.RUnlock()

	values := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		values = append(values, []string{
			s.Name,
			strconv.FormatInt(s.Received, 10),
			strconv.FormatInt(s.Handled, 10),
			strconv.FormatInt(s.Responded, 10),
			strconv.FormatInt(s.DecodeErr, 10),
			strconv.Itoa(s.Pending),
		})
	}
	xcommon.PrintTable(ctx, []string{"actor", "received", "handled", "responded", "decode_err", "pending"}, values)
}
