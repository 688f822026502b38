package email

import (
	"servicehub_backend/internal/logger"
)

// MockProvider logs instead of sending. Used in development and tests.
type MockProvider struct{}

func (p *MockProvider) Send(to, subject, body string) error {
	logger.Debug("mock email", "to", to, "subject", subject)
	return nil
}
