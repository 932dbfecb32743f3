package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, sender_id, receiver_id, status, concept_ids, selected_concept_id,
	title, description, venue, address, event_date, start_time, end_time, audience_estimate,
	ticket_price, artist_fee, door_deal, door_percentage, by_agreement,
	personal_message, tech_spec, hospitality_rider,
	receiver_allowed_at,
	approved_by_sender, approved_by_receiver, sender_approved_at, receiver_approved_at,
	sender_read_agreement, receiver_read_agreement,
	published_by_sender, published_by_receiver, is_public_after_approval, published_at,
	sender_contact_info, receiver_contact_info, contact_info_shared_at,
	last_modified_by, last_modified_at, created_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			          $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, b.SenderID, b.ReceiverID, b.Status, pq.Array(b.ConceptIDs), b.SelectedConceptID,
		b.Title, b.Description, b.Venue, b.Address, b.EventDate, b.StartTime, b.EndTime, b.AudienceEstimate,
		b.Pricing.TicketPrice, b.Pricing.ArtistFee, b.Pricing.DoorDeal, b.Pricing.DoorPercentage, b.Pricing.ByAgreement,
		b.PersonalMessage, b.TechSpec, b.HospitalityRider,
		b.ReceiverAllowedAt,
		b.ApprovedBySender, b.ApprovedByReceiver, b.SenderApprovedAt, b.ReceiverApprovedAt,
		b.SenderReadAgreement, b.ReceiverReadAgreement,
		b.PublishedBySender, b.PublishedByReceiver, b.IsPublicAfterApproval, b.PublishedAt,
		b.SenderContactInfo, b.ReceiverContactInfo, b.ContactInfoSharedAt,
		b.LastModifiedBy, b.LastModifiedAt, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: unknown user", domain.ErrUserNotFound)
		}
		return persistence("insert booking", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, persistence("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, persistence("scan booking", err)
	}

	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, id string, patch domain.BookingPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx", err)
	}
	defer tx.Rollback()

	if err = updateBooking(ctx, tx, id, patch); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return persistence("commit", err)
	}
	return nil
}

// Delete removes the booking with its attachments and change history in one
// transaction. The row is only deleted while it still has status expect.
func (r *BookingRepository) Delete(ctx context.Context, id string, expect domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_attachments WHERE booking_id = $1`, id); err != nil {
		return persistence("delete attachments", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_changes WHERE booking_id = $1`, id); err != nil {
		return persistence("delete changes", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1 AND status = $2`, id, expect)
	if err != nil {
		return persistence("delete booking", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return persistence("booking rows affected", err)
	}
	if rows == 0 {
		return missingOrStale(ctx, tx, id)
	}

	if err = tx.Commit(); err != nil {
		return persistence("commit", err)
	}
	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE sender_id = $1 OR receiver_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, "list bookings by user", query, userID)
}

func (r *BookingRepository) ListPublishedWithoutListing(ctx context.Context, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.status = ANY($1)
			    AND b.is_public_after_approval
			    AND NOT EXISTS (SELECT 1 FROM listings l WHERE l.booking_id = b.id)
			  ORDER BY b.published_at
			  LIMIT $2`

	return r.list(ctx, "list bookings without listing", query, pq.Array(domain.PublishedStatuses), limit)
}

func (r *BookingRepository) CountPublishedByConcept(ctx context.Context, conceptID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE status = ANY($1)
			    AND (selected_concept_id = $2 OR $2 = ANY(concept_ids))`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, pq.Array(domain.PublishedStatuses), conceptID)
	if err != nil {
		return 0, persistence("count published bookings", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, persistence("scan count", err)
	}
	return n, nil
}

func (r *BookingRepository) AddAttachment(ctx context.Context, a *domain.Attachment, patch domain.BookingPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO booking_attachments (id, booking_id, file_name, file_url, kind, added_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(ctx, query,
		a.ID, a.BookingID, a.FileName, a.FileURL, a.Kind, a.AddedBy, a.CreatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrBookingNotFound
		}
		return persistence("insert attachment", err)
	}

	if err = updateBooking(ctx, tx, a.BookingID, patch); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return persistence("commit", err)
	}
	return nil
}

func (r *BookingRepository) ListAttachments(ctx context.Context, bookingID string) ([]*domain.Attachment, error) {
	query := `SELECT id, booking_id, file_name, file_url, kind, added_by, created_at
			  FROM booking_attachments
			  WHERE booking_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, persistence("list attachments", err)
	}
	defer rows.Close()

	res := make([]*domain.Attachment, 0)
	for rows.Next() {
		var a domain.Attachment
		if err = rows.Scan(&a.ID, &a.BookingID, &a.FileName, &a.FileURL, &a.Kind, &a.AddedBy, &a.CreatedAt); err != nil {
			return nil, persistence("scan attachment", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error) {
	query := `SELECT booking_id, changed_by, fields, changed_at
			  FROM booking_changes
			  WHERE booking_id = $1
			  ORDER BY changed_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, persistence("list changes", err)
	}
	defer rows.Close()

	res := make([]*domain.BookingChange, 0)
	for rows.Next() {
		var c domain.BookingChange
		if err = rows.Scan(&c.BookingID, &c.ChangedBy, pq.Array(&c.Fields), &c.ChangedAt); err != nil {
			return nil, persistence("scan change", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, persistence(op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, persistence("scan booking", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// updateBooking writes the set slots of patch and its change history row.
// A write whose status or version guard no longer matches fails with
// domain.ErrStaleBooking.
func updateBooking(ctx context.Context, tx *sql.Tx, id string, patch domain.BookingPatch) error {
	set := bookingSet(patch)
	if len(set.clauses) == 0 {
		return nil
	}

	set.args = append(set.args, id)
	where := fmt.Sprintf("id = $%d", len(set.args))
	if want, ok := patch.ExpectStatus.Get(); ok {
		set.args = append(set.args, want)
		where += fmt.Sprintf(" AND status = $%d", len(set.args))
	}
	if want, ok := patch.ExpectLastModifiedAt.Get(); ok {
		set.args = append(set.args, want)
		where += fmt.Sprintf(" AND last_modified_at = $%d", len(set.args))
	}

	query := `UPDATE bookings SET ` + strings.Join(set.clauses, ", ") + ` WHERE ` + where
	res, err := tx.ExecContext(ctx, query, set.args...)
	if err != nil {
		return persistence("update booking", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return persistence("booking rows affected", err)
	}
	if rows == 0 {
		return missingOrStale(ctx, tx, id)
	}

	if len(patch.ChangedFields) == 0 {
		return nil
	}

	changedBy, _ := patch.LastModifiedBy.Get()
	changedAt, ok := patch.LastModifiedAt.Get()
	if !ok {
		changedAt = time.Now().UTC()
	}
	history := `INSERT INTO booking_changes (booking_id, changed_by, fields, changed_at)
				VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, history, id, changedBy, pq.Array(patch.ChangedFields), changedAt); err != nil {
		return persistence("insert change", err)
	}
	return nil
}

// missingOrStale tells a deleted booking from one that changed under a
// guarded write.
func missingOrStale(ctx context.Context, tx *sql.Tx, id string) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBookingNotFound
	}
	if err != nil {
		return persistence("check booking", err)
	}
	return domain.ErrStaleBooking
}

type setClause struct {
	clauses []string
	args    []any
}

func (s *setClause) add(column string, v any) {
	s.args = append(s.args, v)
	s.clauses = append(s.clauses, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func setField[T any](s *setClause, column string, f domain.Field[T]) {
	if v, ok := f.Get(); ok {
		s.add(column, v)
	}
}

// termColumns maps the names of domain.TermsPatch.Fields to the columns
// they are stored in.
var termColumns = map[string]func(s *setClause, t domain.BookingTerms){
	"title":             func(s *setClause, t domain.BookingTerms) { s.add("title", t.Title) },
	"description":       func(s *setClause, t domain.BookingTerms) { s.add("description", t.Description) },
	"venue":             func(s *setClause, t domain.BookingTerms) { s.add("venue", t.Venue) },
	"address":           func(s *setClause, t domain.BookingTerms) { s.add("address", t.Address) },
	"event_date":        func(s *setClause, t domain.BookingTerms) { s.add("event_date", t.EventDate) },
	"start_time":        func(s *setClause, t domain.BookingTerms) { s.add("start_time", t.StartTime) },
	"end_time":          func(s *setClause, t domain.BookingTerms) { s.add("end_time", t.EndTime) },
	"audience_estimate": func(s *setClause, t domain.BookingTerms) { s.add("audience_estimate", t.AudienceEstimate) },
	"pricing": func(s *setClause, t domain.BookingTerms) {
		s.add("ticket_price", t.Pricing.TicketPrice)
		s.add("artist_fee", t.Pricing.ArtistFee)
		s.add("door_deal", t.Pricing.DoorDeal)
		s.add("door_percentage", t.Pricing.DoorPercentage)
		s.add("by_agreement", t.Pricing.ByAgreement)
	},
	"personal_message":  func(s *setClause, t domain.BookingTerms) { s.add("personal_message", t.PersonalMessage) },
	"tech_spec":         func(s *setClause, t domain.BookingTerms) { s.add("tech_spec", t.TechSpec) },
	"hospitality_rider": func(s *setClause, t domain.BookingTerms) { s.add("hospitality_rider", t.HospitalityRider) },
}

func bookingSet(p domain.BookingPatch) *setClause {
	s := &setClause{}

	setField(s, "status", p.Status)
	if t, ok := p.Terms.Get(); ok {
		for _, name := range p.TermFields {
			if write, ok := termColumns[name]; ok {
				write(s, t)
			}
		}
	}
	setField(s, "selected_concept_id", p.SelectedConceptID)
	setField(s, "receiver_allowed_at", p.ReceiverAllowedAt)

	setField(s, "approved_by_sender", p.ApprovedBySender)
	setField(s, "approved_by_receiver", p.ApprovedByReceiver)
	setField(s, "sender_approved_at", p.SenderApprovedAt)
	setField(s, "receiver_approved_at", p.ReceiverApprovedAt)

	setField(s, "sender_read_agreement", p.SenderReadAgreement)
	setField(s, "receiver_read_agreement", p.ReceiverReadAgreement)

	setField(s, "published_by_sender", p.PublishedBySender)
	setField(s, "published_by_receiver", p.PublishedByReceiver)
	setField(s, "published_at", p.PublishedAt)

	setField(s, "sender_contact_info", p.SenderContactInfo)
	setField(s, "receiver_contact_info", p.ReceiverContactInfo)
	setField(s, "contact_info_shared_at", p.ContactInfoSharedAt)

	setField(s, "last_modified_by", p.LastModifiedBy)
	if at, ok := p.LastModifiedAt.Get(); ok {
		s.args = append(s.args, at)
		s.clauses = append(s.clauses, fmt.Sprintf("last_modified_at = GREATEST(last_modified_at, $%d)", len(s.args)))
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		senderCI, receiverCI []byte
		audience             sql.NullInt64
	)
	err := row.Scan(
		&b.ID, &b.SenderID, &b.ReceiverID, &b.Status, pq.Array(&b.ConceptIDs), &b.SelectedConceptID,
		&b.Title, &b.Description, &b.Venue, &b.Address, &b.EventDate, &b.StartTime, &b.EndTime, &audience,
		&b.Pricing.TicketPrice, &b.Pricing.ArtistFee, &b.Pricing.DoorDeal, &b.Pricing.DoorPercentage, &b.Pricing.ByAgreement,
		&b.PersonalMessage, &b.TechSpec, &b.HospitalityRider,
		&b.ReceiverAllowedAt,
		&b.ApprovedBySender, &b.ApprovedByReceiver, &b.SenderApprovedAt, &b.ReceiverApprovedAt,
		&b.SenderReadAgreement, &b.ReceiverReadAgreement,
		&b.PublishedBySender, &b.PublishedByReceiver, &b.IsPublicAfterApproval, &b.PublishedAt,
		&senderCI, &receiverCI, &b.ContactInfoSharedAt,
		&b.LastModifiedBy, &b.LastModifiedAt, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if audience.Valid {
		n := int(audience.Int64)
		b.AudienceEstimate = &n
	}
	if b.SenderContactInfo, err = decodeContact(senderCI); err != nil {
		return nil, err
	}
	if b.ReceiverContactInfo, err = decodeContact(receiverCI); err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeContact(raw []byte) (*domain.ContactInfo, error) {
	if raw == nil {
		return nil, nil
	}
	var ci domain.ContactInfo
	if err := ci.Scan(raw); err != nil {
		return nil, fmt.Errorf("decode contact info: %w", err)
	}
	if ci.IsEmpty() {
		return nil, nil
	}
	return &ci, nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
