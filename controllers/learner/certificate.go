package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clinigoal/certificate"
	"clinigoal/middleware"
	"clinigoal/utils"
)

// CertificateStatus reports whether the active course's certificate can be
// generated, with the checklist when it cannot.
func CertificateStatus(c *fiber.Ctx) error {
	course, ok := progress.ActiveCourse()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No active course selected!", nil)
	}

	sectionProgress := progress.Progress()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate status fetched!", fiber.Map{
		"course":    course.Title,
		"eligible":  sectionProgress.AllComplete(),
		"progress":  sectionProgress,
		"completed": sectionProgress.Completed(),
		"total":     4,
	})
}

// GenerateCertificate renders the active course's certificate and keeps it
// for download, printing and sharing. Re-generating replaces the kept copy
// with a fresh id and date.
func GenerateCertificate(c *fiber.Ctx) error {
	course, ok := progress.ActiveCourse()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No active course selected!", nil)
	}
	user, _ := progress.User()

	data := certificate.NewData(user.Name, course.Title)
	artifact, err := certGen.Generate(progress.Progress(), data)
	if errors.Is(err, certificate.ErrIncomplete) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete all sections to unlock your certificate!", fiber.Map{
			"progress": progress.Progress(),
		})
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate rendering failed!", nil)
	}

	sessionMu.Lock()
	certificates[course.ID] = certifiedArtifact{data: data, artifact: artifact}
	sessionMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate generated successfully!", fiber.Map{
		"id":             data.ID,
		"userName":       data.UserName,
		"courseTitle":    data.CourseTitle,
		"completionDate": data.CompletionDate,
		"score":          data.Score,
		"instructor":     data.Instructor,
		"issuer":         data.Issuer,
		"contentType":    artifact.ContentType,
		"fileName":       artifact.FileName,
	})
}

// keptCertificate returns the stored artifact for the active course.
func keptCertificate() (certifiedArtifact, bool) {
	course, ok := progress.ActiveCourse()
	if !ok {
		return certifiedArtifact{}, false
	}
	sessionMu.Lock()
	defer sessionMu.Unlock()
	kept, ok := certificates[course.ID]
	return kept, ok
}

// DownloadCertificate streams the rendered certificate bytes.
func DownloadCertificate(c *fiber.Ctx) error {
	kept, ok := keptCertificate()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Generate the certificate first!", nil)
	}
	c.Set(fiber.HeaderContentType, kept.artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+kept.artifact.FileName+`"`)
	return c.Send(kept.artifact.Data)
}

// PrintCertificate serves a printable HTML page wrapping the certificate.
func PrintCertificate(c *fiber.Ctx) error {
	kept, ok := keptCertificate()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Generate the certificate first!", nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(certificate.PrintableHTML(kept.artifact))
}

// ShareBody optionally carries a recipient for emailing the share text.
type ShareBody struct {
	Email string `json:"email"`
}

// ShareCertificate returns the share text and, when a recipient is given,
// emails it.
func ShareCertificate(c *fiber.Ctx) error {
	kept, ok := keptCertificate()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Generate the certificate first!", nil)
	}

	shareText := certificate.ShareText(kept.data)

	reqData := new(ShareBody)
	_ = c.BodyParser(reqData)
	if reqData.Email != "" {
		if err := utils.SendCertificateShareEmail(reqData.Email, kept.data.UserName, kept.data.CourseTitle, kept.data.ID, shareText); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Could not send the share email!", fiber.Map{
				"shareText": shareText,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate ready to share!", fiber.Map{
		"shareText": shareText,
	})
}
