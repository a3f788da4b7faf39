package mailer

type MockMailer struct {
	SendFunc func(recipient, templateFile string, data any) error
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	if m.SendFunc != nil {
		return m.SendFunc(recipient, templateFile, data)
	}

	return nil
}
