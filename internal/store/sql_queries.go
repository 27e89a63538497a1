package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-expense-vault/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	sessionColumns        = []string{"id", "account", "created_at", "mutation_seq", "last_mutation_at"}
	snapshotColumns       = []string{"total", "decrypted_at", "mutation_seq"}
	snapshotRecordColumns = []string{"idx", "category", "amount", "created_at"}
)

func buildUpsertSessionQuery(session models.SessionRecord) (string, []any, error) {
	return psql.Insert("sessions").
		Columns(sessionColumns...).
		Values(
			session.ID.String(),
			session.Account.Hex(),
			session.CreatedAt.Unix(),
			session.MutationSeq,
			unixOrNil(session.LastMutationAt),
		).
		Suffix(`ON CONFLICT (account) DO UPDATE SET
			id = excluded.id,
			created_at = excluded.created_at,
			mutation_seq = excluded.mutation_seq,
			last_mutation_at = excluded.last_mutation_at`).
		ToSql()
}

func buildSelectSessionByAccountQuery(account string) (string, []any, error) {
	return psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"account": account}).
		ToSql()
}

func buildDeleteSessionQuery(id uuid.UUID) (string, []any, error) {
	return psql.Delete("sessions").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

func buildRecordMutationQuery(id uuid.UUID, at time.Time) (string, []any, error) {
	return psql.Update("sessions").
		Set("mutation_seq", sq.Expr("mutation_seq + 1")).
		Set("last_mutation_at", at.Unix()).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

// The lease is taken only when it is free or expired, so RowsAffected tells
// whether the caller holds it.
func buildAcquireDecryptLeaseQuery(id uuid.UUID, now, until time.Time) (string, []any, error) {
	return psql.Update("sessions").
		Set("decrypt_lease_until", until.UnixMilli()).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Or{
			sq.Eq{"decrypt_lease_until": nil},
			sq.LtOrEq{"decrypt_lease_until": now.UnixMilli()},
		}).
		ToSql()
}

func buildReleaseDecryptLeaseQuery(id uuid.UUID) (string, []any, error) {
	return psql.Update("sessions").
		Set("decrypt_lease_until", nil).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
}

func buildUpsertSnapshotQuery(sessionID uuid.UUID, sealedTotal any, decryptedAt any, mutationSeq uint64) (string, []any, error) {
	return psql.Insert("snapshots").
		Columns(append([]string{"session_id"}, snapshotColumns...)...).
		Values(sessionID.String(), sealedTotal, decryptedAt, mutationSeq).
		Suffix(`ON CONFLICT (session_id) DO UPDATE SET
			total = excluded.total,
			decrypted_at = excluded.decrypted_at,
			mutation_seq = excluded.mutation_seq`).
		ToSql()
}

func buildDeleteSnapshotRecordsQuery(sessionID uuid.UUID) (string, []any, error) {
	return psql.Delete("snapshot_records").
		Where(sq.Eq{"session_id": sessionID.String()}).
		ToSql()
}

func buildDeleteSnapshotQuery(sessionID uuid.UUID) (string, []any, error) {
	return psql.Delete("snapshots").
		Where(sq.Eq{"session_id": sessionID.String()}).
		ToSql()
}

// sealedRecord is one snapshot record with its amount already sealed.
type sealedRecord struct {
	index     uint64
	category  string
	amount    string
	timestamp time.Time
}

func buildInsertSnapshotRecordsQuery(sessionID uuid.UUID, records []sealedRecord) (string, []any, error) {
	q := psql.Insert("snapshot_records").
		Columns(append([]string{"session_id"}, snapshotRecordColumns...)...)
	for _, r := range records {
		q = q.Values(sessionID.String(), r.index, r.category, r.amount, r.timestamp.Unix())
	}
	return q.ToSql()
}

func buildSelectSnapshotQuery(sessionID uuid.UUID) (string, []any, error) {
	return psql.Select(snapshotColumns...).
		From("snapshots").
		Where(sq.Eq{"session_id": sessionID.String()}).
		ToSql()
}

// Records are returned most recent first, the order of the view.
func buildSelectSnapshotRecordsQuery(sessionID uuid.UUID) (string, []any, error) {
	return psql.Select(snapshotRecordColumns...).
		From("snapshot_records").
		Where(sq.Eq{"session_id": sessionID.String()}).
		OrderBy("idx DESC").
		ToSql()
}

func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
