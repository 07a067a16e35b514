package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mihnevagency/contact-api/internal/models"
)

// User-facing mail content is Bulgarian, matching the site.
const notProvided = "Не е предоставено"

var adminTmpl = template.Must(template.New("admin").Parse(`<h2>Ново съобщение от {{.Name}}</h2>
<p><strong>Име:</strong> {{.Name}}</p>
<p><strong>Имейл:</strong> {{.Email}}</p>
<p><strong>Телефон:</strong> {{.Phone}}</p>
<p><strong>Компания:</strong> {{.Company}}</p>
<p><strong>Съобщение:</strong></p>
<p>{{.Message}}</p>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Благодаря ви, че се свързахте с нас!</h2>
<p>Здравейте {{.Name}},</p>
<p>Получихме вашето съобщение и ще се свържем с вас в рамките на 2 работни часа.</p>
<p>Ето копие на вашето съобщение:</p>
<blockquote>{{.Message}}</blockquote>
<p>С най-добри пожелания,<br>The Mihnev Agency Team</p>
`))

// AdminNotification renders the internal notification listing the submitted
// fields, with absent optional fields substituted by a placeholder.
func AdminNotification(sub models.ContactSubmission, from, to string) (Message, error) {
	data := sub
	if data.Phone == "" {
		data.Phone = notProvided
	}
	if data.Company == "" {
		data.Company = notProvided
	}

	var buf bytes.Buffer
	if err := adminTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render admin notification: %w", err)
	}
	return Message{
		From:     from,
		To:       to,
		Subject:  "Ново съобщение от " + sub.Name,
		HTMLBody: buf.String(),
	}, nil
}

// Confirmation renders the acknowledgement sent back to the submitter,
// quoting their message.
func Confirmation(sub models.ContactSubmission, from string) (Message, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, sub); err != nil {
		return Message{}, fmt.Errorf("render confirmation: %w", err)
	}
	return Message{
		From:     from,
		To:       sub.Email,
		Subject:  "Благодарим ви, че се свързахте с Mihnev Agency!",
		HTMLBody: buf.String(),
	}, nil
}
