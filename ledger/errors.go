package ledger

import "errors"

var (
	// ErrInvalidInput 输入校验失败，未发起任何存储调用
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("not found")
)
