package verification

import "go.uber.org/zap"

// Mailer is the delivery port. Transport lives outside this service; the
// default implementation just logs, which is also what local development
// wants.
type Mailer interface {
	SendVerificationCode(to, code string) error
	SendResetOTP(to, code string) error
}

type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendVerificationCode(to, code string) error {
	m.log.Info("verification code issued",
		zap.String("to", to),
		zap.String("code", code),
	)
	return nil
}

func (m *LogMailer) SendResetOTP(to, code string) error {
	m.log.Info("password reset otp issued",
		zap.String("to", to),
		zap.String("code", code),
	)
	return nil
}
