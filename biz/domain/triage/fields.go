package triage

import (
	"encoding/json"
	"strings"

	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/health-triage/biz/infrastructure/consts"
)

// decodeObject 确保请求体存在且是一个JSON对象
// 不能是null, 基础类型或数组
func decodeObject(body []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil || m == nil {
		return nil, consts.InvalidRequest("request body must be a JSON object")
	}
	return m, nil
}

// requireString 校验必填字符串字段, 去除空白后长度不小于minLen
func requireString(m map[string]any, key string, minLen int) error {
	v, ok := m[key]
	if !ok || v == nil {
		return consts.InvalidRequest("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return consts.InvalidRequest("%s must be a string", key)
	}
	if minLen <= 1 {
		if strings.TrimSpace(s) == "" {
			return consts.InvalidRequest("%s must be a non-empty string", key)
		}
		return nil
	}
	if len(strings.TrimSpace(s)) < minLen {
		return consts.InvalidRequest("%s must be at least %d characters", key, minLen)
	}
	return nil
}

// requireEnum 校验闭集枚举字段, 精确匹配, 大小写敏感
func requireEnum(m map[string]any, key string, allowed ...string) error {
	if err := requireString(m, key, 1); err != nil {
		return err
	}
	s := m[key].(string)
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return consts.InvalidRequest("%s must be one of %s", key, strings.Join(allowed, ", "))
}

// requireList 校验必填数组字段, 空数组合法
func requireList(m map[string]any, key string) error {
	v, ok := m[key]
	if !ok || v == nil {
		return consts.InvalidRequest("%s is required and must be an array", key)
	}
	if _, ok := v.([]any); !ok {
		return consts.InvalidRequest("%s must be an array", key)
	}
	return nil
}

// bindRequest 在逐字段校验通过后反序列化为请求对象
// 走到这里的失败只可能是可选字段类型不符
func bindRequest(body []byte, req any) error {
	if err := json.Unmarshal(body, req); err != nil {
		return consts.InvalidRequest("request body does not match the expected schema")
	}
	return nil
}

// parseCompletion 将模型文本解析为JSON对象
// 同百炼报告应用一样先去掉反引号, 解析失败不做修复或重试
func parseCompletion(name, text string) (map[string]any, error) {
	text = strings.Replace(text, "`", "", -1)
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil || m == nil {
		log.Error("[%s] unparseable completion text: %s", name, text)
		return nil, consts.ErrBadCompletion
	}
	return m, nil
}

// getString 宽松读取字符串字段, 缺失或类型不符时为空串
func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// getBool 宽松读取布尔字段
func getBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// getStringList 宽松读取字符串列表
// 缺失, null或非列表值一律置为空列表, 绝不为nil
func getStringList(m map[string]any, key string) []string {
	out := make([]string, 0)
	items, ok := m[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// hasList 判断字段是否为合法列表
func hasList(m map[string]any, key string) bool {
	_, ok := m[key].([]any)
	return ok
}
