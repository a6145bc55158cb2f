package xactor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gactor/pkg/xactor"
)

func TestCloneSumInvariant(t *testing.T) {
	ctx := context.Background()

	bridge, err := xactor.Spawn(ctx, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}

	const clones = 4
	const total = 40

	handles := []*xactor.Bridge[counterReq, counterResp]{bridge}
	for i := 1; i < clones; i++ {
		handles = append(handles, bridge.Clone())
	}
	defer func() {
		for _, h := range handles {
			h.Drop()
		}
	}()

	// k个clone并发发送N条
	var wg sync.WaitGroup
	for i := 0; i < clones; i++ {
		wg.Add(1)
		h := handles[i]
		go func() {
			defer wg.Done()
			for j := 0; j < total/clones; j++ {
				if err := h.Send(counterReq{Op: "add"}); err != nil {
					t.Errorf("send failed %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	// 回应与clone不保证对应, 但总量守恒: 恰好N条可被接收
	seen := make(map[int32]bool)
	for i := 0; i < total; i++ {
		resp, err := handles[i%clones].Receive()
		if err != nil {
			t.Fatalf("receive failed %v", err)
		}
		if seen[resp.Count] {
			t.Fatalf("count %v duplicated", resp.Count)
		}
		seen[resp.Count] = true
	}
	for i := int32(1); i <= total; i++ {
		if !seen[i] {
			t.Fatalf("count %v missing", i)
		}
	}
}

func TestRequestCorrelated(t *testing.T) {
	ctx := context.Background()

	bridge, err := xactor.Spawn(ctx, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}
	defer bridge.Drop()

	const clients = 4
	const perClient = 10

	// 多个clone并发Request: 私有回复通道, 无FIFO串扰
	var mu sync.Mutex
	seen := make(map[int32]bool)

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		h := bridge.Clone()
		go func() {
			defer wg.Done()
			defer h.Drop()
			for j := 0; j < perClient; j++ {
				resp, err := h.Request(ctx, counterReq{Op: "add"})
				if err != nil {
					t.Errorf("request failed %v", err)
					return
				}
				mu.Lock()
				if seen[resp.Count] {
					t.Errorf("count %v duplicated", resp.Count)
				}
				seen[resp.Count] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != clients*perClient {
		t.Fatalf("responses %v expect %v", len(seen), clients*perClient)
	}
}

func TestRequestNoRespond(t *testing.T) {
	ctx := context.Background()

	// handler对未知Op不回应, Request方必须解除阻塞
	bridge, err := xactor.Spawn(ctx, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}
	defer bridge.Drop()

	if _, err := bridge.Request(ctx, counterReq{Op: "unknown"}); !errors.Is(err, xactor.ErrClosed) {
		t.Fatalf("request err %v expect ErrClosed", err)
	}
}

func TestRequestCancelWait(t *testing.T) {
	ctx := context.Background()

	bridge, err := xactor.Spawn(ctx, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}
	defer bridge.Drop()

	// ctx只取消等待, 不中断handler
	timeoutCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if _, err := bridge.Request(timeoutCtx, counterReq{Op: "sleep"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("request err %v expect deadline exceeded", err)
	}
}
