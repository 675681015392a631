package v1beta1

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/report"
)

type listFlaggedCommentsResponse struct {
	Comments []*report.FlaggedComment `json:"comments"`
	Total    int64                    `json:"total"`
}

// ListFlaggedComments serves the moderation queue, restricted to moderators
func (s *HTTPServer) ListFlaggedComments(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if !actor.IsAdmin() {
		s.writeError(ctx, w, comment.ErrNotModerator)
		return
	}

	q := r.URL.Query()
	filter := &report.FlaggedCommentsFilter{
		Statuses:   parseCommaSeparatedValues(q["statuses"]),
		TargetKind: q.Get("target_kind"),
		TargetID:   q.Get("target_id"),
	}
	if filter.MinFlagCount, err = queryInt(q, "min_flag_count"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.Size, err = queryInt(q, "size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.Offset, err = queryInt(q, "offset"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if v := q.Get("flagged_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			s.writeError(ctx, w, errInvalidFlaggedBefore)
			return
		}
		filter.FlaggedBefore = &t
	}

	var (
		comments []*report.FlaggedComment
		total    int64
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		comments, err = s.reportService.GetFlaggedComments(egctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.reportService.CountFlaggedComments(egctx, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if comments == nil {
		comments = []*report.FlaggedComment{}
	}
	writeJSON(w, http.StatusOK, listFlaggedCommentsResponse{
		Comments: comments,
		Total:    total,
	})
}
