package util

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"

	"github.com/xh-polaris/health-triage/biz/adaptor/cmd"
	"github.com/xh-polaris/health-triage/biz/infrastructure/config"
)

// FailOnError 出现异常时中止
func FailOnError(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err.Error())
	}
}

// ParsePaging 解析分页参数
func ParsePaging(p *cmd.Paging) (skip, limit int64) {
	// 设置分页参数
	skip = int64((p.Page - 1) * p.Limit)
	limit = int64(p.Limit)
	return skip, limit
}

// AlertEMail 高风险报告预警邮件
func AlertEMail(concernType string) (err error) {
	c := config.GetConfig().SMTP
	auth := smtp.PlainAuth("", c.Username, c.Password, c.Host)
	err = smtp.SendMail(c.Host+":"+strconv.Itoa(c.Port), auth, c.Username, []string{c.Alert}, []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: xh-polaris\r\n"+
			"Content-Type: text/plain"+"; charset=UTF-8\r\n"+
			"Subject: 预警信息\r\n\r\n"+
			"检测到一份高风险健康报告(主诉类型: %s), 请及时跟进\r\n", c.Alert, concernType)))
	return err
}
