package controllers

import (
	"sync"

	"clinigoal/backend"
	"clinigoal/certificate"
	"clinigoal/progression"
	"clinigoal/store"
)

var (
	api      *backend.Client
	local    *store.Store
	progress *progression.Controller
	certGen  *certificate.Generator

	passingPct int

	sessionMu sync.Mutex
	// One quiz attempt per quiz id. A fresh start replaces any earlier
	// attempt for the same quiz.
	quizSessions map[string]*progression.QuizSession
	// Latest rendered certificate per course, for download/print/share.
	certificates map[string]certifiedArtifact
)

type certifiedArtifact struct {
	data     certificate.Data
	artifact *certificate.Artifact
}

// Setup injects the shared services. Called once from main before routes
// are registered.
func Setup(client *backend.Client, localStore *store.Store, controller *progression.Controller, generator *certificate.Generator, passingScorePct int) {
	api = client
	local = localStore
	progress = controller
	certGen = generator
	passingPct = passingScorePct
	quizSessions = map[string]*progression.QuizSession{}
	certificates = map[string]certifiedArtifact{}
}
