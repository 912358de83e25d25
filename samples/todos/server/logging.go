package main

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func withLogging(h http.Handler) http.Handler {
	logFn := func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		h.ServeHTTP(rw, r)

		log.WithFields(log.Fields{
			"uri":      uri,
			"method":   method,
			"duration": time.Since(start),
		}).Info()
	}

	return http.HandlerFunc(logFn)
}
