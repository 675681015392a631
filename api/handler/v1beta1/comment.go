package v1beta1

import (
	"bytes"
	"net/http"

	"github.com/goto/discuss/core/comment"
	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/domain"
)

type attachmentRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	// Data is base64 encoded in the json body
	Data []byte `json:"data"`
}

type createCommentRequest struct {
	Content     string               `json:"content"`
	Attachments []*attachmentRequest `json:"attachments"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

type flagCommentRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type moderateCommentRequest struct {
	Event string `json:"event"`
}

type commentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

func (s *HTTPServer) CreateRootComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req createCommentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	uploads := make([]*domain.AttachmentUpload, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		uploads = append(uploads, &domain.AttachmentUpload{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Size:        int64(len(a.Data)),
			Body:        bytes.NewReader(a.Data),
		})
	}

	c, err := s.commentService.CreateRoot(ctx, comment.CreateRootRequest{
		Target: domain.CommentTarget{
			Kind: domain.CommentTargetKind(pathParams["target_kind"]),
			ID:   pathParams["target_id"],
		},
		Author:      actor.ID,
		Content:     req.Content,
		Attachments: uploads,
	})
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse{Comment: c})
}

func (s *HTTPServer) CreateReply(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req createCommentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	c, err := s.commentService.CreateReply(ctx, comment.CreateReplyRequest{
		ParentID: pathParams["id"],
		Author:   actor.ID,
		Content:  req.Content,
	})
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentResponse{Comment: c})
}

func (s *HTTPServer) EditComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req editCommentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	c, err := s.commentService.Edit(ctx, pathParams["id"], actor, req.Content)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) DeleteComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	c, err := s.commentService.Delete(ctx, pathParams["id"], actor)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) ToggleLike(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	res, err := s.commentService.ToggleLike(ctx, pathParams["id"], actor.ID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *HTTPServer) FlagComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req flagCommentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	c, err := s.commentService.AddFlag(ctx, comment.FlagRequest{
		CommentID:   pathParams["id"],
		UserID:      actor.ID,
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) ModerateComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	actor, err := s.getUser(ctx)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req moderateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	c, err := s.commentService.Moderate(ctx, pathParams["id"], actor, moderation.Event(req.Event))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) GetComment(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	c, err := s.commentService.GetByID(ctx, pathParams["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) GetFullThread(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	c, err := s.commentService.GetFullThread(ctx, pathParams["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, commentResponse{Comment: c})
}

func (s *HTTPServer) GetThreadPage(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.ThreadPageFilter{
		TargetKind: domain.CommentTargetKind(pathParams["target_kind"]),
		TargetID:   pathParams["target_id"],
		SortOrder:  q.Get("sort_order"),
	}
	var err error
	if filter.Page, err = queryInt(q, "page"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.PageSize, err = queryInt(q, "page_size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.ReplyPageSize, err = queryOptionalInt(q, "reply_page_size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	page, err := s.commentService.GetThreadPage(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *HTTPServer) GetReplies(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.ReplyPageFilter{
		ParentID:  pathParams["id"],
		SortOrder: q.Get("sort_order"),
	}
	var err error
	if filter.Page, err = queryInt(q, "page"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.PageSize, err = queryInt(q, "page_size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	page, err := s.commentService.GetReplies(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *HTTPServer) SearchComments(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.SearchCommentsFilter{
		Query:      q.Get("q"),
		TargetKind: domain.CommentTargetKind(q.Get("target_kind")),
		TargetID:   q.Get("target_id"),
	}
	var err error
	if filter.Size, err = queryInt(q, "size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.Offset, err = queryInt(q, "offset"); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	page, err := s.commentService.Search(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *HTTPServer) ListUserComments(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.ListAuthorCommentsFilter{
		Author: pathParams["author"],
	}
	var err error
	if filter.Size, err = queryInt(q, "size"); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if filter.Offset, err = queryInt(q, "offset"); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	page, err := s.commentService.ListByAuthor(ctx, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
