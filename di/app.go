package di

import (
	"staysync/internal/domains/sync/scheduler"
	"staysync/transport/http"
)

// App bundles the long-lived components main drives: the HTTP server and the
// periodic sync scheduler.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}
