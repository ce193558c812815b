package email

// SendWelcomeEmail greets a newly created account.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName":  name,
		"UserEmail": to,
	}

	return c.SendEmail(
		to,
		"Welcome aboard!",
		TemplateWelcome,
		data,
	)
}
