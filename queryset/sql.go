package queryset

import (
	"context"
	"database/sql"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/friendsofgo/errors"
	"github.com/go-openapi/inflect"

	"github.com/restkit/fields/meta"
)

// SQL is a Queryset over one table of a database/sql database. Columns are
// derived from the model's metadata: the json tag name when present,
// otherwise the snake_cased Go field name. Filter keys go through the same
// mapping, so filters use attribute names, not column names.
type SQL struct {
	db          *sql.DB
	table       string
	model       any
	meta        *meta.StructMeta
	columns     []string
	placeholder squirrel.PlaceholderFormat
}

// SQLOption configures a SQL queryset.
type SQLOption func(*SQL)

// WithPlaceholderFormat sets the SQL placeholder style. Defaults to
// squirrel.Question.
func WithPlaceholderFormat(f squirrel.PlaceholderFormat) SQLOption {
	return func(q *SQL) { q.placeholder = f }
}

// NewSQL builds a SQL queryset for model rows in table. model must be a
// struct (or pointer to struct) value; a non-struct model panics, as the
// queryset is unusable without metadata.
func NewSQL(db *sql.DB, table string, model any, opts ...SQLOption) *SQL {
	sm, err := meta.Describe(model)
	if err != nil {
		panic("queryset: " + err.Error())
	}
	q := &SQL{db: db, table: table, model: model, meta: sm, placeholder: squirrel.Question}
	for _, fd := range sm.Fields() {
		q.columns = append(q.columns, columnName(&fd))
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *SQL) Model() any { return q.model }

func (q *SQL) Get(ctx context.Context, filters map[string]any) (any, error) {
	eq := make(squirrel.Eq, len(filters))
	for name, value := range filters {
		fd, ok := q.meta.Field(name)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidFilter, "%s has no attribute %q", q.meta.Type(), name)
		}
		eq[columnName(fd)] = value
	}
	query, args, err := squirrel.Select(q.columns...).
		From(q.table).
		Where(eq).
		Limit(2).
		PlaceholderFormat(q.placeholder).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "queryset: building query")
	}
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "queryset: executing query")
	}
	defer rows.Close()

	var found any
	matches := 0
	for rows.Next() {
		obj, err := q.scanRow(rows)
		if err != nil {
			return nil, err
		}
		found = obj
		matches++
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "queryset: reading rows")
	}
	switch matches {
	case 0:
		return nil, ErrObjectDoesNotExist
	case 1:
		return found, nil
	default:
		return nil, ErrMultipleObjects
	}
}

func (q *SQL) scanRow(rows *sql.Rows) (any, error) {
	obj := reflect.New(q.meta.Type())
	dests := make([]any, 0, len(q.meta.Fields()))
	for _, fd := range q.meta.Fields() {
		fv, err := meta.AddressOf(obj, &fd)
		if err != nil {
			return nil, errors.Wrap(err, "queryset: scanning row")
		}
		dests = append(dests, fv)
	}
	if err := rows.Scan(dests...); err != nil {
		return nil, errors.Wrap(err, "queryset: scanning row")
	}
	return obj.Interface(), nil
}

func columnName(fd *meta.FieldDescriptor) string {
	if fd.JSONName != "" {
		return fd.JSONName
	}
	return inflect.Underscore(fd.Name)
}
