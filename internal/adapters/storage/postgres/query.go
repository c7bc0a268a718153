package postgres

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"paws-sync/internal/ports/remotestore"
)

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var sqlOps = map[remotestore.Op]string{
	remotestore.OpEqual:          "=",
	remotestore.OpLess:           "<",
	remotestore.OpLessOrEqual:    "<=",
	remotestore.OpGreater:        ">",
	remotestore.OpGreaterOrEqual: ">=",
}

// buildQuery traduce un remotestore.Query a SQL sobre la tabla documents.
// Los campos viajan como parámetros (data->($n::text)), nunca interpolados.
func buildQuery(q remotestore.Query) (string, []any, error) {
	if !validCollection(q.Collection) {
		return "", nil, remotestore.ErrInvalidPath
	}
	if q.Limit < 0 {
		return "", nil, remotestore.ErrInvalidQuery
	}

	sb := strings.Builder{}
	sb.WriteString("SELECT id, data FROM documents WHERE collection = $1")

	args := []any{q.Collection}
	argN := 2

	for _, f := range q.Where {
		op, ok := sqlOps[f.Op]
		if !ok || !fieldName.MatchString(f.Field) {
			return "", nil, remotestore.ErrInvalidQuery
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return "", nil, remotestore.ErrInvalidQuery
		}
		// misma semántica que el backend: solo compara valores del mismo tipo
		sb.WriteString(fmt.Sprintf(
			" AND jsonb_typeof(data->($%d::text)) = jsonb_typeof($%d::jsonb) AND data->($%d::text) %s $%d::jsonb",
			argN, argN+1, argN, op, argN+1,
		))
		args = append(args, f.Field, string(v))
		argN += 2
	}

	if q.OrderBy != "" {
		if !fieldName.MatchString(q.OrderBy) {
			return "", nil, remotestore.ErrInvalidQuery
		}
		dir := "ASC"
		switch q.Direction {
		case "", remotestore.Ascending:
		case remotestore.Descending:
			dir = "DESC"
		default:
			return "", nil, remotestore.ErrInvalidQuery
		}
		sb.WriteString(fmt.Sprintf(" AND data ? ($%d::text) ORDER BY data->($%d::text) %s, id ASC", argN, argN, dir))
		args = append(args, q.OrderBy)
		argN++
	} else {
		sb.WriteString(" ORDER BY id ASC")
	}

	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, q.Limit)
	}

	return sb.String(), args, nil
}
