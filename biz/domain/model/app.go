package model

import (
	"github.com/xh-polaris/health-triage/biz/application/dto"
)

// CompletionApp 是第三方文本补全大模型应用的抽象
// 单次调用, 无上下文管理, 不流式, 不重试
type CompletionApp interface {
	// Call 发送指令与内容, 返回模型的原始文本
	Call(prompt *dto.Prompt) (string, error)

	// Close 关闭资源
	Close() error
}
