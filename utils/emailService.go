package utils

import (
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"clinigoal/config"
)

// SendCertificateShareEmail sends the certificate summary to a recipient,
// the email flavor of the dashboard's share action.
func SendCertificateShareEmail(toEmail, toName, courseTitle, certificateID, shareText string) error {
	if config.AppConfig.SendgridKey == "" {
		return errors.New("email sharing is not configured")
	}

	from := mail.NewEmail("Clinigoal", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := "Course Completion Certificate - " + courseTitle

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">%s</p>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Certificate ID:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Clinigoal Educational Platform</p>
				</div>
			</body>
		</html>
	`, shareText, certificateID)

	message := mail.NewSingleEmail(from, subject, to, shareText, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending certificate share email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Certificate share email rejected, status: %d", resp.StatusCode)
		return fmt.Errorf("failed to send share email, code: %d", resp.StatusCode)
	}

	log.Println("Certificate share email sent successfully to", toEmail)
	return nil
}
