package certificate

import (
	"bytes"
	"html/template"
)

// MarkupRenderer is the fallback path: a self-contained HTML certificate,
// structurally identical to the image layout, suitable for print-to-PDF.
type MarkupRenderer struct{}

var markupTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Certificate of Completion</title>
<style>
body { font-family: Georgia, serif; background: #f4f4f4; margin: 0; padding: 40px; }
.certificate { max-width: 900px; margin: auto; background: linear-gradient(135deg, #f8f9fa, #e9ecef);
  border: 12px solid #d4af37; outline: 3px solid #f39c12; outline-offset: -24px; padding: 40px; }
.cert-header { background: #2c3e50; color: #ffffff; text-align: center; padding: 24px; }
.cert-header h1 { margin: 0; font-size: 28px; }
.cert-header h2 { margin: 8px 0 0; font-weight: normal; font-size: 20px; color: #ecf0f1; }
.cert-body { text-align: center; padding: 32px 16px; color: #34495e; }
.cert-body h3 { font-size: 34px; color: #2c3e50; margin: 12px 0; }
.cert-body h4 { font-size: 26px; color: #27ae60; margin: 12px 0; }
.cert-details { display: flex; justify-content: space-between; color: #7f8c8d; font-size: 14px;
  font-family: Arial, sans-serif; margin-top: 24px; }
.cert-footer { display: flex; justify-content: space-around; margin-top: 48px; }
.signature { text-align: center; font-family: Arial, sans-serif; font-size: 14px; color: #34495e; }
.signature p { border-top: 2px solid #34495e; padding-top: 8px; margin-bottom: 2px; min-width: 200px; }
.signature span { color: #7f8c8d; }
</style>
</head>
<body>
<div class="certificate">
  <div class="cert-header">
    <h1>{{.Issuer}}</h1>
    <h2>Certificate of Completion</h2>
  </div>
  <div class="cert-body">
    <p>This is to certify that</p>
    <h3>{{.UserName}}</h3>
    <p>has successfully completed the course</p>
    <h4>{{.CourseTitle}}</h4>
    <div class="cert-details">
      <span>Date: {{.CompletionDate}}</span>
      <span>ID: {{.ID}}</span>
      <span>Score: {{.Score}}</span>
      <span>Duration: {{.Duration}}</span>
    </div>
  </div>
  <div class="cert-footer">
    <div class="signature"><p>{{.Instructor}}</p><span>Course Instructor</span></div>
    <div class="signature"><p>{{.Issuer}}</p><span>Issuing Authority</span></div>
  </div>
</div>
</body>
</html>
`))

// Render produces the HTML artifact.
func (r *MarkupRenderer) Render(data Data) (*Artifact, error) {
	var buf bytes.Buffer
	if err := markupTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return &Artifact{
		ContentType: "text/html",
		FileName:    downloadName(data.CourseTitle) + "_Certificate.html",
		Data:        buf.Bytes(),
	}, nil
}
