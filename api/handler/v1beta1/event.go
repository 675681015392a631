package v1beta1

import (
	"net/http"

	"github.com/goto/discuss/domain"
)

type listEventsResponse struct {
	Events []*domain.Event `json:"events"`
}

func (s *HTTPServer) ListCommentEvents(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.ListEventsFilter{
		CommentID: pathParams["id"],
		Types:     parseCommaSeparatedValues(q["types"]),
	}
	var err error
	if filter.Size, err = queryInt(q, "size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	events, err := s.eventService.List(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEventsResponse{Events: events})
}
