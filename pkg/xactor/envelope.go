package xactor

// 输入信封: 编码后的输入消息 + 可选的私有回复通道
// reply非nil表示Request模式, 回应只投递给发起方
// handler未回应或actor退出时由循环close, 解除请求方阻塞
type envelope struct {
	data  []byte
	reply chan []byte // cap 1
}
