package controllers

import (
	"clinigoal/backend"
	"clinigoal/monitor"
	"clinigoal/utils"
)

var (
	api       *backend.Client
	approvals *monitor.Monitor
	health    *utils.BackendHealth
	reviews   *utils.ReviewCache
)

// Setup injects the shared services. Called once from main before routes
// are registered.
func Setup(client *backend.Client, mon *monitor.Monitor, backendHealth *utils.BackendHealth, reviewCache *utils.ReviewCache) {
	api = client
	approvals = mon
	health = backendHealth
	reviews = reviewCache
}
