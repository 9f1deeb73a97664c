package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/cookie-relay/internal/logger"
	"github.com/MKhiriev/cookie-relay/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// Content-Encoding: gzip. Invalid gzip data is answered with 400. Response
// compression is left to middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		contentEncoding := req.Header.Get("Content-Encoding")
		isGzipRequest := strings.Contains(strings.ToLower(contentEncoding), "gzip")

		if !isGzipRequest || req.Body == nil || req.Body == http.NoBody {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			logger.FromRequest(req).Err(err).Str("func", "withGZipRequest").Msg("invalid gzip data")
			utils.WriteText(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		original := req.Body
		req.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
				original.Close()
			},
		}
		req.Header.Del("Content-Encoding")
		req.Header.Del("Content-Length")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
	closed  bool
}

func (w *wrappedReadCloser) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}
