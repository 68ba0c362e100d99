package handler

import (
	"net/http"
	"sync"

	"reserve/config"
	"reserve/di"
	"reserve/shared/logger"
	transport "reserve/transport/http"
)

var (
	bootOnce sync.Once
	server   *transport.HTTP
)

// Handler is the serverless entrypoint. The container is built on the first invocation and reused by warm
// instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	bootOnce.Do(func() {
		logger.Init(config.Get())

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
