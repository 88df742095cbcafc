package notification

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/vilanovabarber/booking-api/internal/config"
)

// Mailer sends the no-show notification over SMTP. It is strictly
// best-effort: every failure path logs and returns false, nothing bubbles
// up to the appointment flow.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendNoShow(email, clientName, barberName string, noShowCount int) bool {
	if email == "" {
		log.Warn().Msg("no-show email skipped: client email is missing")
		return false
	}

	if m.cfg.Host == "" {
		log.Warn().Str("to", email).Msg("no-show email skipped: SMTP not configured")
		return false
	}

	subject, body := noShowMessage(clientName, barberName, noShowCount)

	msg := fmt.Sprintf(
		"From: Barbearia Vila Nova <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, email, subject, body,
	)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		log.Error().Err(err).Str("to", email).Msg("failed to send no-show email")
		return false
	}

	return true
}

// noShowMessage picks the message tone from the post-increment counter:
// a first offense gets an inquiry, the second a blocked-account notice.
func noShowMessage(clientName, barberName string, noShowCount int) (subject, body string) {
	blocked := noShowCount >= 2

	if blocked {
		subject = "Aviso: Sua conta foi bloqueada para novos agendamentos"
		body = fmt.Sprintf(
			"Olá %s,\n\n"+
				"Notamos que você não compareceu a seu agendamento com %s na Barbearia Vila Nova.\n\n"+
				"Este é o segundo aviso. Infelizmente, após múltiplas ausências sem aviso prévio, "+
				"você não poderá mais agendar horários em nossa barbearia.\n\n"+
				"Se você gostaria de explicar o motivo da sua ausência ou gostaria de conversar sobre isso, "+
				"entre em contato conosco.\n\n"+
				"Atenciosamente,\nBarbearia Vila Nova",
			clientName, barberName,
		)
		return subject, body
	}

	subject = "Notificação: Você não compareceu ao seu agendamento"
	body = fmt.Sprintf(
		"Olá %s,\n\n"+
			"Notamos que você não compareceu a seu agendamento com %s na Barbearia Vila Nova.\n\n"+
			"Gostaria de saber o motivo da sua ausência para que possamos melhorar nosso atendimento. "+
			"Se houver algum problema ou se você precisar reagendar, entre em contato conosco.\n\n"+
			"Atenciosamente,\nBarbearia Vila Nova",
		clientName, barberName,
	)
	return subject, body
}
