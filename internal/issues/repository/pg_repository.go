package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/models"
)

type issuesRepo struct {
	db *sqlx.DB
}

func NewIssuesRepo(db *sqlx.DB) issues.Repository {
	return &issuesRepo{
		db: db,
	}
}

func (i *issuesRepo) CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	created := &models.Issue{}
	if err := i.db.QueryRowxContext(
		ctx,
		createIssueQuery,
		issue.TranslationID,
		issue.ProjectID,
		issue.LanguageCode,
		issue.IssueType,
		issue.Severity,
		issue.Score,
		issue.Diff,
		issue.Details,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return created, nil
}

func (i *issuesRepo) GetIssuesByProject(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.Issue, error) {
	rows, err := i.db.QueryxContext(ctx, getIssuesByProjectQuery, projectID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get issues: %w", err)
	}
	defer rows.Close()
	var result = make([]*models.Issue, 0)
	for rows.Next() {
		var issue models.Issue
		if err = rows.StructScan(&issue); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		result = append(result, &issue)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan issues: %w", err)
	}
	return result, nil
}

func (i *issuesRepo) SetResolved(ctx context.Context, issueID uuid.UUID, resolved bool) (bool, error) {
	res, err := i.db.ExecContext(ctx, setResolvedQuery, issueID, resolved)
	if err != nil {
		return false, fmt.Errorf("failed to update issue: %w", err)
	}
	count, _ := res.RowsAffected()
	return count > 0, nil
}

func (i *issuesRepo) ListTranslationTexts(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*issues.TranslationText, error) {
	rows, err := i.db.QueryxContext(ctx, listTranslationTextsQuery, projectID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list translation texts: %w", err)
	}
	defer rows.Close()
	var result = make([]*issues.TranslationText, 0)
	for rows.Next() {
		var row issues.TranslationText
		if err = rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan translation text: %w", err)
		}
		result = append(result, &row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan translation texts: %w", err)
	}
	return result, nil
}

func (i *issuesRepo) GetTranslationText(ctx context.Context, segmentID, languageCode string) (*issues.TranslationText, error) {
	row := &issues.TranslationText{}
	if err := i.db.QueryRowxContext(
		ctx,
		getTranslationTextQuery,
		segmentID,
		languageCode,
	).StructScan(row); err != nil {
		return nil, fmt.Errorf("failed to get translation text: %w", err)
	}
	return row, nil
}

func (i *issuesRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	res, err := i.db.ExecContext(ctx, deleteByProjectQuery, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete issues: %w", err)
	}
	count, _ := res.RowsAffected()
	return count, nil
}

func (i *issuesRepo) DeleteByTranslation(ctx context.Context, translationID string) (int64, error) {
	res, err := i.db.ExecContext(ctx, deleteByTranslationQuery, translationID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete issues: %w", err)
	}
	count, _ := res.RowsAffected()
	return count, nil
}
