package postgres

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// metaRow is one key/value pair of post_meta or attachment_meta.
type metaRow struct {
	Key   string `db:"meta_key"`
	Value string `db:"meta_value"`
}

func selectMeta(ctx context.Context, exec sqlx.ExtContext, table, owner string, ownerID int64) (map[string]string, error) {
	var rows []metaRow
	query := fmt.Sprintf(`SELECT meta_key, meta_value FROM %s WHERE %s = $1`, table, owner)
	if err := sqlx.SelectContext(ctx, exec, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	metas := make(map[string]string, len(rows))
	for _, r := range rows {
		metas[r.Key] = r.Value
	}
	return metas, nil
}

// upsertMeta writes all pairs in one statement. Keys are sorted so the
// statement is stable.
func upsertMeta(ctx context.Context, exec sqlx.ExtContext, table, owner string, ownerID int64, metas map[string]string) error {
	if len(metas) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metas))
	for k := range metas {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s, meta_key, meta_value) VALUES ", table, owner)
	valueArgs := make([]any, 0, len(keys)*2+1)
	valueArgs = append(valueArgs, ownerID)

	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, k, metas[k])
	}
	fmt.Fprintf(&sb, " ON CONFLICT (%s, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value", owner)

	if _, err := exec.ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}
