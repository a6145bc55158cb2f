package xactor_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"gactor/pkg/xactor"
	"gactor/pkg/xcodec"
)

// 遇到"bad"负载解码失败的codec, 模拟版本不匹配
type flakyCodec struct {
	xcodec.JSON
}

func (c flakyCodec) Unmarshal(data []byte, v interface{}) error {
	if bytes.Contains(data, []byte("bad")) {
		return fmt.Errorf("unknown payload")
	}
	return c.JSON.Unmarshal(data, v)
}

func TestDecodeErrorSkipsMessage(t *testing.T) {
	ctx := context.Background()

	bridge, err := xactor.SpawnWith(ctx, xactor.SpawnArgs{Name: "flaky-counter", Codec: flakyCodec{}}, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}
	defer bridge.Drop()

	// 解码失败只丢弃该消息, 后续消息正常处理
	if err := bridge.Send(counterReq{Op: "bad"}); err != nil {
		t.Fatalf("send failed %v", err)
	}
	resp, err := bridge.Get(counterReq{Op: "add"})
	if err != nil {
		t.Fatalf("get failed %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count %v expect 1", resp.Count)
	}

	stats, err := xactor.Lookup("flaky-counter")
	if err != nil {
		t.Fatalf("lookup failed %v", err)
	}
	if stats.DecodeErr != 1 {
		t.Fatalf("decode err %v expect 1", stats.DecodeErr)
	}
	if stats.Handled != 1 {
		t.Fatalf("handled %v expect 1", stats.Handled)
	}
}

func TestLookupAndDump(t *testing.T) {
	ctx := context.Background()

	bridge, err := xactor.SpawnWith(ctx, xactor.SpawnArgs{Name: "dump-counter"}, newCounter)
	if err != nil {
		t.Fatalf("spawn failed %v", err)
	}

	if _, err := bridge.Get(counterReq{Op: "add"}); err != nil {
		t.Fatalf("get failed %v", err)
	}

	stats, err := xactor.Lookup("dump-counter")
	if err != nil {
		t.Fatalf("lookup failed %v", err)
	}
	if stats.Received != 1 || stats.Responded != 1 {
		t.Fatalf("stats %+v", stats)
	}
	if xactor.Count() < 1 {
		t.Fatalf("count %v expect >=1", xactor.Count())
	}

	xactor.DumpTable(ctx)

	bridge.Drop()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := xactor.Lookup("dump-counter"); err != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("actor not deregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
