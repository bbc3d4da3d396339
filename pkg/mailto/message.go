package mailto

import "strings"

// SubjectPrefix starts every inquiry subject.
const SubjectPrefix = "Painting Inquiry: "

// MailMessage is a composed inquiry. Build it with BuildMailMessage; it is not
// modified afterwards.
type MailMessage struct {
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	EncodedURI string `json:"uri"`
}

// BuildSubject returns the subject line for an inquiry about product.
func BuildSubject(product string) string {
	return SubjectPrefix + product
}

// BuildBody lays out all four submitted values. Values are interpolated as is.
func BuildBody(sub FormSubmission) string {
	var b strings.Builder
	b.Grow(len(sub.Name) + len(sub.Email) + len(sub.SelectedProduct) + len(sub.Message) + 48)
	b.WriteString("Name: ")
	b.WriteString(sub.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(sub.Email)
	b.WriteString("\nProduct: ")
	b.WriteString(sub.SelectedProduct)
	b.WriteString("\n\nMessage:\n")
	b.WriteString(sub.Message)
	return b.String()
}

// BuildURI assembles mailto:<recipient>?subject=<enc>&body=<enc>.
// Subject and body are encoded independently.
func BuildURI(recipient, subject, body string) string {
	return scheme + recipient + "?subject=" + EncodeComponent(subject) + "&body=" + EncodeComponent(body)
}

// BuildMailMessage composes the message for sub. It is pure: identical input
// always yields a byte-identical URI.
func BuildMailMessage(sub FormSubmission, recipient string) MailMessage {
	subject := BuildSubject(sub.SelectedProduct)
	body := BuildBody(sub)
	return MailMessage{
		Recipient:  recipient,
		Subject:    subject,
		Body:       body,
		EncodedURI: BuildURI(recipient, subject, body),
	}
}
