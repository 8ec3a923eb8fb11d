package xhttp

import "net/http"

const (
	ContentType     = "Content-Type"
	Accept          = "Accept"
	UserAgent       = "User-Agent"
	XClientSession  = "X-Client-Session-ID"
	ApplicationJSON = "application/json"
)

func SetRequestHeaderJSON(req *http.Request) {
	req.Header.Set(ContentType, ApplicationJSON)
	req.Header.Set(Accept, ApplicationJSON)
}

func SetRequestHeaderSessionID(req *http.Request, sessionID string) {
	req.Header.Set(XClientSession, sessionID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}
