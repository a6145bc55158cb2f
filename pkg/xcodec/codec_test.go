package xcodec_test

import (
	"gactor/pkg/xcodec"
	"reflect"
	"testing"
)

type jsonMsg struct {
	Op    string
	Count int32
	Tags  []string
}

func TestJSONRoundTrip(t *testing.T) {
	codec := xcodec.JSON{}

	msgs := []jsonMsg{
		{},
		{Op: "add", Count: 1},
		{Op: "close", Count: -42, Tags: []string{"a", "b"}},
	}
	for _, msg := range msgs {
		data, err := codec.Marshal(msg)
		if err != nil {
			t.Fatalf("marshal failed %v", err)
		}
		got := jsonMsg{}
		if err := codec.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal failed %v", err)
		}
		if !reflect.DeepEqual(msg, got) {
			t.Fatalf("round trip %+v => %+v", msg, got)
		}
	}
}

func TestJSONUnmarshalError(t *testing.T) {
	codec := xcodec.JSON{}
	got := jsonMsg{}
	if err := codec.Unmarshal([]byte("not json"), &got); err == nil {
		t.Fatalf("expect unmarshal error")
	}
}

type binMsg struct {
	Seq int32
	Num int32
}

func TestBinaryRoundTrip(t *testing.T) {
	codec := xcodec.Binary{}

	msg := binMsg{Seq: 7, Num: 1024}
	data, err := codec.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed %v", err)
	}
	got := binMsg{}
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed %v", err)
	}
	if msg != got {
		t.Fatalf("round trip %+v => %+v", msg, got)
	}
}
