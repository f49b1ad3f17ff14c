package triage

import (
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/domain/model"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

// Operation 描述一个操作的三段式流水线
// 三个操作结构相同, 只有载荷结构和安全规则不同
type Operation struct {
	Name string

	// Validate 校验原始请求体, 返回规范化后的请求对象
	// 校验失败时不会发生任何远端调用
	Validate func(body []byte) (any, error)

	// Compose 渲染固定指令块与任务内容块
	// 对已校验的输入不会失败
	Compose func(req any) *dto.Prompt

	// Normalize 解析模型文本, 修复缺失字段并覆盖权威字段
	Normalize func(text string, req any) (any, error)
}

// Engine 按 validate -> compose -> call -> normalize 执行一次操作
// 每次调用的数据都是本地的, 不同请求之间没有共享状态
type Engine struct {
	app model.CompletionApp
}

// NewEngine 创建一个流水线引擎
func NewEngine(app model.CompletionApp) *Engine {
	return &Engine{app: app}
}

// Run 执行一次操作, 任一阶段失败立即返回
func (e *Engine) Run(op *Operation, body []byte) (resp any, err error) {
	// 兜底, 单次失败不能影响进程
	defer func() {
		if r := recover(); r != nil {
			log.Error("[%s] pipeline panic: %v", op.Name, r)
			resp, err = nil, consts.ErrInternal
		}
	}()

	req, err := op.Validate(body)
	if err != nil {
		return nil, err
	}

	prompt := op.Compose(req)

	text, err := e.app.Call(prompt)
	if err != nil {
		return nil, err
	}

	return op.Normalize(text, req)
}

// Close 释放底层大模型应用资源
func (e *Engine) Close() error {
	return e.app.Close()
}
