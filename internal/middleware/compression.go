package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression compresses responses for clients that accept gzip. Resolution
// responses for full EDI batches run to hundreds of kilobytes of JSON, which
// compresses well. The metrics endpoint is exempt so the Prometheus scraper
// negotiates its own encoding, as is the swagger UI with its pre-packed
// assets.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{`^/swagger/`}),
	)
}
