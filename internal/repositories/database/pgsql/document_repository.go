package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/cylinder_holdings/internal/apperrors"
	"github.com/SscSPs/cylinder_holdings/internal/core/domain"
	portsrepo "github.com/SscSPs/cylinder_holdings/internal/core/ports/repositories"
	"github.com/SscSPs/cylinder_holdings/internal/models"
	"github.com/SscSPs/cylinder_holdings/internal/utils/mapping"
	"github.com/SscSPs/cylinder_holdings/internal/utils/pagination"
)

const documentNumberConstraint = "documents_document_number_key"

// PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade using pgx.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentSelect = `
	SELECT d.document_id, d.document_number, d.document_type, d.document_date, d.customer_account,
		c.name, d.status, d.void_reason, d.void_date, d.void_by,
		d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM documents d
	JOIN customers c ON c.account_number = d.customer_account`

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.DocumentNumber, &m.DocumentType, &m.DocumentDate, &m.CustomerAccount,
		&m.CustomerName, &m.Status, &m.VoidReason, &m.VoidDate, &m.VoidBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// mapWriteError translates constraint violations raised while writing a document.
func mapWriteError(err error, doc *domain.Document, action string) error {
	code, constraint := pgErrorCode(err)
	switch {
	case code == pgUniqueViolation && constraint == documentNumberConstraint:
		return fmt.Errorf("%w: document number %s is already taken", apperrors.ErrConflict, doc.DocumentNumber)
	case code == pgForeignKeyViolation:
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, doc.CustomerAccount)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to %s document %s", action, doc.DocumentNumber), err)
}

// CreateDocument inserts the document, its movements and the audit record in one transaction.
func (r *PgxDocumentRepository) CreateDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelDocument(*doc)
	query := `
		INSERT INTO documents (document_number, document_type, document_date, customer_account, status,
			void_reason, void_date, void_by, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING document_id;
	`
	var documentID int64
	err = tx.QueryRow(ctx, query,
		m.DocumentNumber, m.DocumentType, m.DocumentDate, m.CustomerAccount, m.Status,
		m.VoidReason, m.VoidDate, m.VoidBy, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&documentID)
	if err != nil {
		return mapWriteError(err, doc, "create")
	}

	movementIDs, err := insertMovements(ctx, tx, documentID, doc.Movements)
	if err != nil {
		return err
	}

	audit.DocumentID = &documentID
	if err := insertAudit(ctx, tx, audit); err != nil {
		return err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	doc.DocumentID = documentID
	setMovementIDs(doc, movementIDs)
	return nil
}

// ReplaceDocument rewrites the header fields and the full movement set of an existing document.
func (r *PgxDocumentRepository) ReplaceDocument(ctx context.Context, doc *domain.Document, audit domain.DocumentAudit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelDocument(*doc)
	query := `
		UPDATE documents
		SET document_number = $2, document_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE document_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.DocumentID, m.DocumentNumber, m.DocumentDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, doc, "update")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %d", apperrors.ErrNotFound, doc.DocumentID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cylinder_movements WHERE document_id = $1;`, doc.DocumentID); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to clear movements of document "+doc.DocumentNumber, err)
	}
	movementIDs, err := insertMovements(ctx, tx, doc.DocumentID, doc.Movements)
	if err != nil {
		return err
	}

	audit.DocumentID = &doc.DocumentID
	if err := insertAudit(ctx, tx, audit); err != nil {
		return err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	setMovementIDs(doc, movementIDs)
	return nil
}

// DeleteDocument removes a document; its movements go with it through the foreign key cascade.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID int64, audit domain.DocumentAudit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete document %d", documentID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %d", apperrors.ErrNotFound, documentID)
	}

	audit.DocumentID = nil
	if err := insertAudit(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateDocumentStatus stores the status and void fields of doc.
func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, doc domain.Document, audit domain.DocumentAudit) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelDocument(doc)
	query := `
		UPDATE documents
		SET status = $2, void_reason = $3, void_date = $4, void_by = $5, last_updated_at = $6, last_updated_by = $7
		WHERE document_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.DocumentID, m.Status, m.VoidReason, m.VoidDate, m.VoidBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update status of document "+doc.DocumentNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %d", apperrors.ErrNotFound, doc.DocumentID)
	}

	audit.DocumentID = &doc.DocumentID
	if err := insertAudit(ctx, tx, audit); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	return r.findOne(ctx, documentSelect+` WHERE d.document_id = $1;`, documentID, fmt.Sprintf("document %d", documentID))
}

func (r *PgxDocumentRepository) FindDocumentByNumber(ctx context.Context, documentNumber string) (*domain.Document, error) {
	return r.findOne(ctx, documentSelect+` WHERE d.document_number = $1;`, documentNumber, "document "+documentNumber)
}

func (r *PgxDocumentRepository) findOne(ctx context.Context, query string, arg any, label string) (*domain.Document, error) {
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, label)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find "+label, err)
	}
	movements, err := r.findMovements(ctx, []int64{m.DocumentID})
	if err != nil {
		return nil, err
	}
	doc, err := mapping.ToDomainDocument(m, movements[m.DocumentID])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map "+label, err)
	}
	return &doc, nil
}

func (r *PgxDocumentRepository) DocumentNumberExists(ctx context.Context, documentNumber string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM documents WHERE document_number = $1);`, documentNumber).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check document number "+documentNumber, err)
	}
	return exists, nil
}

// FindLatestDocumentNumber returns the highest number issued for docType, or "" when none exists.
// Numbers are fixed width so lexical order is numeric order.
func (r *PgxDocumentRepository) FindLatestDocumentNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	query := `
		SELECT document_number FROM documents
		WHERE document_type = $1
		ORDER BY document_number DESC
		LIMIT 1;
	`
	var number string
	err := r.Pool.QueryRow(ctx, query, docType.Prefix()).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewAppError(http.StatusInternalServerError, "failed to find latest document number", err)
	}
	return number, nil
}

func (r *PgxDocumentRepository) FindDocumentNumbers(ctx context.Context, numbers []string) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(numbers) == 0 {
		return found, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT document_number FROM documents WHERE document_number = ANY($1);`, numbers)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to look up document numbers", err)
	}
	defer rows.Close()
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan document number", err)
		}
		found[number] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating document numbers", err)
	}
	return found, nil
}

// ListDocumentsByCustomer returns one page of a customer's documents, newest first.
func (r *PgxDocumentRepository) ListDocumentsByCustomer(ctx context.Context, accountNumber string, filter domain.DocumentListFilter) ([]domain.Document, *string, error) {
	var sb strings.Builder
	sb.WriteString(documentSelect)
	sb.WriteString(` WHERE d.customer_account = $1`)
	args := []any{accountNumber}

	if filter.Month != nil {
		start := domain.StartOfMonth(*filter.Month)
		args = append(args, start, start.AddDate(0, 1, 0))
		fmt.Fprintf(&sb, ` AND d.document_date >= $%d AND d.document_date < $%d`, len(args)-1, len(args))
	}

	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewFieldError(apperrors.ErrInvalidFormat, "nextToken", *filter.NextToken, err.Error())
		}
		args = append(args, cursor.DocumentDate, cursor.CreatedAt, cursor.DocumentID)
		fmt.Fprintf(&sb, ` AND (d.document_date, d.created_at, d.document_id) < ($%d, $%d, $%d)`, len(args)-2, len(args)-1, len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// one extra row tells us whether another page exists
	args = append(args, limit+1)
	fmt.Fprintf(&sb, ` ORDER BY d.document_date DESC, d.created_at DESC, d.document_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query documents of customer "+accountNumber, err)
	}
	defer rows.Close()

	docModels := make([]models.Document, 0, limit+1)
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan document row", err)
		}
		docModels = append(docModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating document rows", err)
	}

	var nextToken *string
	if len(docModels) > limit {
		docModels = docModels[:limit]
		last := docModels[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			DocumentDate: last.DocumentDate,
			CreatedAt:    last.CreatedAt,
			DocumentID:   last.DocumentID,
		})
		nextToken = &token
	}

	ids := make([]int64, len(docModels))
	for i, m := range docModels {
		ids[i] = m.DocumentID
	}
	movements, err := r.findMovements(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	docs := make([]domain.Document, 0, len(docModels))
	for _, m := range docModels {
		doc, err := mapping.ToDomainDocument(m, movements[m.DocumentID])
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map document", err)
		}
		docs = append(docs, doc)
	}
	return docs, nextToken, nil
}

func (r *PgxDocumentRepository) findMovements(ctx context.Context, documentIDs []int64) (map[int64][]models.CylinderMovement, error) {
	byDocument := make(map[int64][]models.CylinderMovement, len(documentIDs))
	if len(documentIDs) == 0 {
		return byDocument, nil
	}
	query := `
		SELECT movement_id, document_id, direction, quantity, item_code
		FROM cylinder_movements
		WHERE document_id = ANY($1)
		ORDER BY document_id, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, documentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query movements", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mv models.CylinderMovement
		if err := rows.Scan(&mv.MovementID, &mv.DocumentID, &mv.Direction, &mv.Quantity, &mv.ItemCode); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan movement row", err)
		}
		byDocument[mv.DocumentID] = append(byDocument[mv.DocumentID], mv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating movement rows", err)
	}
	return byDocument, nil
}

// insertMovements batch-inserts the movements of a document and returns their ids in order.
func insertMovements(ctx context.Context, tx pgx.Tx, documentID int64, movements []domain.CylinderMovement) ([]int64, error) {
	if len(movements) == 0 {
		return nil, nil
	}
	query := `
		INSERT INTO cylinder_movements (document_id, direction, quantity, item_code)
		VALUES ($1, $2, $3, $4)
		RETURNING movement_id;
	`
	batch := &pgx.Batch{}
	for _, mv := range movements {
		m := mapping.ToModelMovement(mv)
		batch.Queue(query, documentID, m.Direction, m.Quantity, m.ItemCode)
	}

	br := tx.SendBatch(ctx, batch)
	ids := make([]int64, len(movements))
	for i := range movements {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to insert movement %d of document %d", i+1, documentID), err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to close movement batch", err)
	}
	return ids, nil
}

func insertAudit(ctx context.Context, tx pgx.Tx, audit domain.DocumentAudit) error {
	m, err := mapping.ToModelDocumentAudit(audit)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode audit record", err)
	}
	query := `
		INSERT INTO document_audits (document_id, document_number, action, user_id, timestamp, changes)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, query, m.DocumentID, m.DocumentNumber, m.Action, m.UserID, m.Timestamp, string(m.Changes)); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to write audit record for "+m.DocumentNumber, err)
	}
	return nil
}

func setMovementIDs(doc *domain.Document, ids []int64) {
	for i := range doc.Movements {
		doc.Movements[i].DocumentID = doc.DocumentID
		if i < len(ids) {
			doc.Movements[i].MovementID = ids[i]
		}
	}
}
