package auth

import (
	"context"

	"github.com/vaultchat/vaultchat/internal/logging"
)

// CodeSender delivers a verification code to the account's phone. Delivery
// transport (SMS gateway, push, etc.) is deployment-specific.
type CodeSender interface {
	Send(ctx context.Context, orgID, phone, code string) error
}

// LogSender writes codes to the log instead of delivering them. Development
// only.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, orgID, phone, code string) error {
	s.logger.Info(ctx, "verification code issued", "org_id", orgID, "phone", phone, "code", code)
	return nil
}
