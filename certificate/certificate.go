package certificate

import (
	"errors"
	"log"
	"time"

	"clinigoal/models"
	"clinigoal/utils"
)

// Fixed certificate fields. The platform issues every certificate under
// the same instructor and authority; score and duration are display values
// carried over from the course template.
const (
	Instructor = "Dr. Sarah Johnson"
	Issuer     = "Clinigoal Educational Platform"
	Score      = "95%"
	Duration   = "6 weeks"
)

// ErrIncomplete blocks generation until all four sections are done.
var ErrIncomplete = errors.New("complete all course sections before generating your certificate")

// Data is everything a renderer needs to produce a certificate. It is
// ephemeral: generated on demand, never persisted server-side.
type Data struct {
	ID             string `json:"id"`
	UserName       string `json:"userName"`
	CourseTitle    string `json:"courseTitle"`
	CompletionDate string `json:"completionDate"`
	Score          string `json:"score"`
	Instructor     string `json:"instructor"`
	Issuer         string `json:"issuer"`
	Duration       string `json:"duration"`
}

// NewData assembles certificate data for a learner and course, stamped
// with today's date.
func NewData(userName, courseTitle string) Data {
	if userName == "" {
		userName = "Student Name"
	}
	if courseTitle == "" {
		courseTitle = "Course Title"
	}
	return Data{
		ID:             utils.GenerateCertificateID(),
		UserName:       userName,
		CourseTitle:    courseTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
		Score:          Score,
		Instructor:     Instructor,
		Issuer:         Issuer,
		Duration:       Duration,
	}
}

// Artifact is a rendered certificate. Callers downloading, printing or
// sharing it never need to know which renderer produced it.
type Artifact struct {
	ContentType string `json:"contentType"`
	FileName    string `json:"fileName"`
	Data        []byte `json:"data"`
}

// Renderer turns certificate data into an artifact.
type Renderer interface {
	Render(Data) (*Artifact, error)
}

// Generator gates certificate generation on completion and selects the
// renderer: the image path first, the markup fallback behind a single
// try/fail boundary.
type Generator struct {
	image  Renderer
	markup Renderer
}

// NewGenerator wires the default renderer pair. fontPath may be empty, in
// which case image rendering fails over to markup.
func NewGenerator(fontPath string) *Generator {
	return &Generator{
		image:  &ImageRenderer{FontPath: fontPath},
		markup: &MarkupRenderer{},
	}
}

// NewGeneratorWith allows injecting renderers (used by tests).
func NewGeneratorWith(image, markup Renderer) *Generator {
	return &Generator{image: image, markup: markup}
}

// Generate renders a certificate once all four section flags are true.
// Toggling any flag false disables generation again.
func (g *Generator) Generate(progress models.SectionProgress, data Data) (*Artifact, error) {
	if !progress.AllComplete() {
		return nil, ErrIncomplete
	}

	artifact, err := g.image.Render(data)
	if err == nil {
		return artifact, nil
	}
	log.Printf("[CERTIFICATE] image rendering failed, using markup fallback: %v", err)
	return g.markup.Render(data)
}
