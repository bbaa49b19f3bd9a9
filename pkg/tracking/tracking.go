package tracking

import "net/http"

// Tracking receives fire-and-forget behavioral events. Implementations must
// never block a request.
type Tracking interface {
	TrackSession(sessionId int, r *http.Request)
	TrackSearch(sessionId int, query string, resultLen int, page int, r *http.Request)
	TrackLead(sessionId int, leadId string, reference string)
}
