package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/bennettdavid04/simply-invest/pkg/logger"
)

type gzipWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (g gzipWriter) Write(b []byte) (int, error) {
	return g.zw.Write(b)
}

func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzip.NewWriter(w)
		defer func() {
			if err := zw.Close(); err != nil {
				logger.Log.Error("error closing gzip writer", logger.Error(err))
			}
		}()

		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipWriter{ResponseWriter: w, zw: zw}, r)
	})
}
