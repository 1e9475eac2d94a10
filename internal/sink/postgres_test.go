package sink

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rclogistics/rc-dwgen/internal/testutil"
)

func TestPostgresLoad(t *testing.T) {
	connStr := testutil.SkipIfNoPostgres(t)

	star := testStar(t)
	meta := Metadata{Version: "test", Records: 25, LoadedAt: time.Now()}

	ctx := context.Background()
	if err := NewPostgres(connStr, meta).Load(ctx, star); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to reconnect: %v", err)
	}
	defer pool.Close()

	counts := []struct {
		table string
		want  int
	}{
		{"DimDate", len(star.DimDate)},
		{"DimCustomer", 25},
		{"FactShipment", 25},
		{"FactRevenue", 25},
	}
	for _, tc := range counts {
		var got int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM "`+tc.table+`"`).Scan(&got); err != nil {
			t.Fatalf("count %s: %v", tc.table, err)
		}
		if got != tc.want {
			t.Errorf("%s rows = %d, want %d", tc.table, got, tc.want)
		}
	}

	var version string
	err = pool.QueryRow(ctx,
		"SELECT value FROM dwgen_metadata WHERE key = 'version'").Scan(&version)
	if err != nil {
		t.Fatalf("metadata query failed: %v", err)
	}
	if version != "test" {
		t.Errorf("metadata version = %q, want test", version)
	}
}
