package contactform

// Translation keys for form messages.
const (
	msgError        = "Please enter a valid email address."
	msgSuccess      = "Thank you! Your message was sent successfully."
	msgSending      = "Sending..."
	msgSendMessage  = "Send Message"
	msgConfirmation = "Confirmation"
	msgPhoneError   = "Телефонният номер трябва да е точно 10 цифри."
)

// translations is the static key/value lookup for the site locale.
var translations = map[string]string{
	msgError:        "Моля, въведете валиден имейл адрес.",
	msgSuccess:      "Благодарим ви! Вашето съобщение беше изпратено успешно.",
	msgSending:      "Изпращане...",
	msgSendMessage:  "Изпрати съобщение",
	msgConfirmation: "Потвърждение",
}

// t resolves a message key, falling back to the key itself.
func t(key string) string {
	if v, ok := translations[key]; ok {
		return v
	}
	return key
}
