package smtp

import (
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/drivers/mailer"
	"clinicare-service/internal/pkg/exceptions"
	"fmt"
	"net/smtp"
)

const basicEmailFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) contracts.SMTPService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(basicEmailFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
