package dto

type (
	// Prompt 一次大模型调用的指令与内容
	// Instructions是操作固定的角色规则, Content是由请求序列化得到的任务内容
	Prompt struct {
		Instructions string `json:"instructions"`
		Content      string `json:"content"`
	}
)
