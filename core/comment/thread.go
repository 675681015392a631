package comment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goto/discuss/domain"
)

const replyFetchConcurrency = 8

var liveStatuses = []domain.CommentStatus{domain.CommentStatusActive}

// GetThreadPage returns a page of live root comments for an idea or a domain.
// Each root carries its first replies and its stored reply count.
func (s *Service) GetThreadPage(ctx context.Context, filter domain.ThreadPageFilter) (*domain.CommentPage, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := s.config.pageSize(filter.PageSize)
	replyPageSize := s.config.attachedReplyCount(filter.ReplyPageSize)
	orderBy := domain.SortOrderToOrderBy(filter.SortOrder)

	rootsFilter := domain.ListCommentsFilter{
		TargetKind: filter.TargetKind,
		TargetID:   filter.TargetID,
		RootsOnly:  true,
		Statuses:   liveStatuses,
	}
	total, err := s.repo.Count(ctx, rootsFilter)
	if err != nil {
		return nil, s.storeError(ctx, "counting root comments", err, "target_id", filter.TargetID)
	}

	rootsFilter.Size = pageSize
	rootsFilter.Offset = (page - 1) * pageSize
	rootsFilter.OrderBy = orderBy
	roots, err := s.repo.List(ctx, rootsFilter)
	if err != nil {
		return nil, s.storeError(ctx, "listing root comments", err, "target_id", filter.TargetID)
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(replyFetchConcurrency)
	for _, root := range roots {
		root := root
		if root.ReplyCount == 0 {
			continue
		}
		if replyPageSize == 0 {
			root.HasMoreReplies = true
			continue
		}
		eg.Go(func() error {
			replies, err := s.repo.List(egctx, domain.ListCommentsFilter{
				ParentID: root.ID,
				Statuses: liveStatuses,
				Size:     replyPageSize,
				OrderBy:  orderBy,
			})
			if err != nil {
				return err
			}
			root.Replies = replies
			root.HasMoreReplies = root.ReplyCount > len(replies)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, s.storeError(ctx, "listing replies", err, "target_id", filter.TargetID)
	}

	s.render(roots...)
	return domain.NewCommentPage(roots, page, pageSize, total), nil
}

// GetReplies returns a page of live direct replies of a comment
func (s *Service) GetReplies(ctx context.Context, filter domain.ReplyPageFilter) (*domain.CommentPage, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err)
	}
	if _, err := s.repo.GetByID(ctx, filter.ParentID); err != nil {
		return nil, s.storeError(ctx, "getting parent comment", err, "parent_id", filter.ParentID)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := s.config.replyPageSize(filter.PageSize)

	repliesFilter := domain.ListCommentsFilter{
		ParentID: filter.ParentID,
		Statuses: liveStatuses,
	}
	total, err := s.repo.Count(ctx, repliesFilter)
	if err != nil {
		return nil, s.storeError(ctx, "counting replies", err, "parent_id", filter.ParentID)
	}

	repliesFilter.Size = pageSize
	repliesFilter.Offset = (page - 1) * pageSize
	repliesFilter.OrderBy = domain.SortOrderToOrderBy(filter.SortOrder)
	replies, err := s.repo.List(ctx, repliesFilter)
	if err != nil {
		return nil, s.storeError(ctx, "listing replies", err, "parent_id", filter.ParentID)
	}
	for _, r := range replies {
		r.HasMoreReplies = r.ReplyCount > 0
	}

	s.render(replies...)
	return domain.NewCommentPage(replies, page, pageSize, total), nil
}

// GetFullThread expands a comment with all of its descendants, one generation
// per store call. Deleted nodes stay as placeholders so their subtree keeps its
// place, while hidden, spam and flagged nodes are pruned with their subtree.
// Replies beyond the depth cap are attached to the last node below the cap.
func (s *Service) GetFullThread(ctx context.Context, id string) (*domain.Comment, error) {
	root, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(ctx, "getting comment", err, "comment_id", id)
	}
	root.Replies = nil

	// anchor maps a node id to the node it was attached to, which is where
	// its capped-level children go
	anchor := map[string]*domain.Comment{root.ID: root}
	nodes := map[string]*domain.Comment{root.ID: root}
	frontier := []string{root.ID}
	count := 1

	for generation := 1; len(frontier) > 0; generation++ {
		children, err := s.repo.ListByParentIDs(ctx, frontier)
		if err != nil {
			return nil, s.storeError(ctx, "listing thread generation", err, "comment_id", id, "generation", generation)
		}

		var next []string
		for _, child := range children {
			parent, ok := nodes[child.ParentID]
			if !ok || !isVisibleInThread(child) {
				continue
			}
			if count >= s.config.FullThreadMaxNodes {
				parent.HasMoreReplies = true
				continue
			}

			attachTo := parent
			if child.ThreadLevel <= parent.ThreadLevel {
				attachTo = anchor[parent.ID]
			}
			attachTo.Replies = append(attachTo.Replies, child)
			anchor[child.ID] = attachTo

			nodes[child.ID] = child
			next = append(next, child.ID)
			count++
		}
		frontier = next
	}

	s.render(root)
	return root, nil
}

func isVisibleInThread(c *domain.Comment) bool {
	return c.IsDeleted || c.Status == domain.CommentStatusActive
}
