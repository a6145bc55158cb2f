package xcodec

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"github.com/pkg/errors"
)

// 消息编解码器: 消息跨隔离边界必须序列化为自包含的字节
// 要求对每个可构造的消息Unmarshal(Marshal(v))严格还原
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// 默认编解码方案
func Default() Codec { return JSON{} }

// json编解码, 支持变长数据结构
type JSON struct{}

func (JSON) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "json marshal")
	}
	return data, nil
}

func (JSON) Unmarshal(data []byte, v interface{}) error {
	return errors.Wrap(json.Unmarshal(data, v), "json unmarshal")
}

// 二进制编解码(little endian), 不支持变长数据结构
// 适用于定长协议结构体(网络收发)
type Binary struct{}

func (Binary) Marshal(v interface{}) ([]byte, error) {
	ioWrite := bytes.NewBuffer(nil)
	if err := binary.Write(ioWrite, binary.LittleEndian, v); err != nil {
		return nil, errors.Wrap(err, "binary marshal")
	}
	return ioWrite.Bytes(), nil
}

func (Binary) Unmarshal(data []byte, v interface{}) error {
	ioReader := bytes.NewReader(data)
	return errors.Wrap(binary.Read(ioReader, binary.LittleEndian, v), "binary unmarshal")
}
