package service

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"vault/config"
	"vault/ledger"

	"gopkg.in/gomail.v2"
)

// sender 发送邮件，测试中替换为内存实现
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Attachment 邮件附件
type Attachment struct {
	Name string
	Data []byte
}

// EmailService 邮件服务
type EmailService struct {
	cfg    *config.EmailConfig
	dialer sender
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Enabled 是否启用
func (s *EmailService) Enabled() bool {
	return s.cfg.Enabled
}

// SendMonthlyReport 发送月度报告，附带 Excel 报表
func (s *EmailService) SendMonthlyReport(toEmail string, report *ledger.MonthlyReport, attachment *Attachment) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 VAULT_EMAIL_ENABLED=true")
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("未配置月度报告收件人")
	}

	subject := fmt.Sprintf("【Vault】Resumen mensual %s", report.Label)
	body := s.generateReportBody(report)

	return s.sendEmail(toEmail, subject, body, attachment)
}

// generateReportBody 生成月度报告邮件内容
func (s *EmailService) generateReportBody(report *ledger.MonthlyReport) string {
	var cats strings.Builder
	for _, c := range report.Categories {
		if c.Value == 0 {
			continue
		}
		fmt.Fprintf(&cats, `<tr><td><span class="dot" style="background:%s"></span>%s</td><td class="num">%s</td><td class="num">%d%%</td></tr>`,
			html.EscapeString(c.Color), html.EscapeString(c.Name), ledger.FormatCLP(c.Value), c.Percent)
	}
	if cats.Len() == 0 {
		cats.WriteString(`<tr><td colspan="3" class="empty">Sin gastos registrados</td></tr>`)
	}

	var goals strings.Builder
	for _, g := range report.Goals {
		fmt.Fprintf(&goals, `<tr><td>%s</td><td class="num">%s / %s</td><td class="num">%d%%</td></tr>`,
			html.EscapeString(g.Name), ledger.FormatCLP(g.Current), ledger.FormatCLP(g.Target), g.Percent)
	}
	if goals.Len() == 0 {
		goals.WriteString(`<tr><td colspan="3" class="empty">Sin metas</td></tr>`)
	}

	balanceClass := "pos"
	if report.Summary.Balance < 0 {
		balanceClass = "neg"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .stats td { padding: 8px 12px; }
        table { width: 100%%; border-collapse: collapse; margin-bottom: 24px; }
        th { text-align: left; color: #64748b; font-size: 12px; border-bottom: 1px solid #e2e8f0; padding: 6px 12px; }
        td { padding: 6px 12px; color: #333; border-bottom: 1px solid #f1f5f9; }
        .num { text-align: right; }
        .pos { color: #10b981; font-weight: 600; }
        .neg { color: #ef4444; font-weight: 600; }
        .dot { display: inline-block; width: 8px; height: 8px; border-radius: 4px; margin-right: 6px; }
        .empty { color: #94a3b8; text-align: center; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 Vault · %s</h1>
        </div>
        <div class="content">
            <table class="stats">
                <tr><td>Ingresos</td><td class="num">%s</td></tr>
                <tr><td>Gastos</td><td class="num">%s</td></tr>
                <tr><td>Balance</td><td class="num %s">%s</td></tr>
                <tr><td>Tasa de ahorro</td><td class="num">%d%%</td></tr>
            </table>
            <table>
                <tr><th>Categoría</th><th class="num">Monto</th><th class="num">%%</th></tr>
                %s
            </table>
            <table>
                <tr><th>Meta</th><th class="num">Progreso</th><th class="num">%%</th></tr>
                %s
            </table>
        </div>
        <div class="footer">
            <p>%d movimientos · detalle en el archivo adjunto</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(report.Label),
		ledger.FormatCLP(report.Summary.Income),
		ledger.FormatCLP(report.Summary.Expense),
		balanceClass, ledger.FormatCLP(report.Summary.Balance),
		report.Summary.SavingsRate,
		cats.String(),
		goals.String(),
		len(report.Transactions))
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string, attachment *Attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if attachment != nil {
		data := attachment.Data
		m.Attach(attachment.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(data))
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
