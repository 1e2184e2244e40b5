package certificate

import (
	"encoding/base64"
	"fmt"
)

// ShareText is the plain-text summary used by the share action (clipboard
// or email body).
func ShareText(data Data) string {
	return fmt.Sprintf(
		"I've successfully completed %s from Clinigoal! Certificate ID: %s",
		data.CourseTitle, data.ID,
	)
}

// PrintableHTML wraps any artifact in a minimal printable page. Markup
// artifacts already are one; image artifacts get embedded as a data URL,
// the same trick the print window used.
func PrintableHTML(artifact *Artifact) string {
	if artifact.ContentType == "text/html" {
		return string(artifact.Data)
	}
	encoded := base64.StdEncoding.EncodeToString(artifact.Data)
	return fmt.Sprintf(
		`<html><head><title>Certificate</title><style>body{margin:0;padding:20px;}img{max-width:100%%;}</style></head>
<body><img src="data:%s;base64,%s" /></body></html>`,
		artifact.ContentType, encoded,
	)
}
