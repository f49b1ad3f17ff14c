package bailian

import (
	"errors"
	"net/http"

	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/application/dto"
	"github.com/xh-polaris/health-triage/biz/domain/model"
	"github.com/xh-polaris/health-triage/biz/infrastructure/config"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
	"github.com/xh-polaris/health-triage/biz/infrastructure/util"
)

var _ model.CompletionApp = (*BLCompletionApp)(nil)

const (
	// defaultUrl 百炼OpenAI兼容模式端点
	defaultUrl = "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"

	// Model 固定的模型标识
	Model = "qwen-plus"
)

// BLCompletionApp 是阿里云百炼文本补全应用
// 单次对话, 无需管理上下文, 请求结构化输出(JSON)
type BLCompletionApp struct {
	apiKey string
	url    string
	header http.Header
}

// NewBLCompletionApp 创建一个百炼补全应用实例
// url为空时使用默认端点
func NewBLCompletionApp(apiKey string, url string) model.CompletionApp {
	if url == "" {
		url = defaultUrl
	}
	app := &BLCompletionApp{
		apiKey: apiKey,
		url:    url,
		header: http.Header{},
	}

	// 设置请求头
	app.header.Set("Authorization", "Bearer "+apiKey)
	app.header.Set("Content-Type", "application/json")

	return app
}

// NewFromConfig 从配置创建百炼补全应用
func NewFromConfig(c *config.Config) model.CompletionApp {
	return NewBLCompletionApp(c.BaiLianCompletion.ApiKey, c.BaiLianCompletion.Url)
}

// Call 单次非流式调用
func (app *BLCompletionApp) Call(prompt *dto.Prompt) (string, error) {
	// 凭证检查在任何网络调用之前
	if app.apiKey == "" {
		log.Error("bailian completion api key missing")
		return "", consts.ErrMissingCredential
	}

	body := map[string]any{
		"model": Model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt.Instructions},
			{"role": "user", "content": prompt.Content},
		},
		// 要求模型返回可机器解析的JSON
		"response_format": map[string]string{"type": "json_object"},
	}

	client := util.GetHttpClient()
	res, err := client.Req(consts.Post, app.url, app.header, body)
	if err != nil {
		var se *util.StatusError
		if errors.As(err, &se) {
			log.Error("bailian completion status: %d, body: %s", se.StatusCode, se.Body)
		}
		return "", consts.ErrUpstream.Wrap(err)
	}

	text, ok := extractText(res)
	if !ok {
		log.Error("bailian completion has no extractable text")
		return "", consts.ErrEmptyCompletion
	}
	return text, nil
}

// extractText 从兼容模式响应中取出首个choice的文本
func extractText(res map[string]any) (string, bool) {
	choices, ok := res["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	text, ok := message["content"].(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// Close 释放相关资源
// BLCompletion暂时没有需要释放的资源
func (app *BLCompletionApp) Close() error {
	return nil
}
