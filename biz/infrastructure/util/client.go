package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

var client *HttpClient

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
}

// StatusError 是非2xx响应对应的错误, 保留状态码和原始响应体用于日志
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, response body: %s", e.StatusCode, e.Body)
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

// GetHttpClient 获取客户端单例
func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// Req 发送 HTTP 请求, 非2xx时返回 *StatusError
func (c *HttpClient) Req(method, url string, headers http.Header, body interface{}) (map[string]interface{}, error) {
	resp, err := c.do(method, url, headers, body)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	_resp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(_resp)}
	}

	// 反序列化响应体
	var respMap map[string]interface{}
	if err := json.Unmarshal(_resp, &respMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}

	return respMap, nil
}

// do 实际执行请求
func (c *HttpClient) do(method, url string, headers http.Header, body interface{}) (*http.Response, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequest(method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	// 发送请求
	resp, err := c.Client.Do(req)

	return resp, err
}
