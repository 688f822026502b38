package email

// Provider sends a single email. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(to, subject, body string) error
}
