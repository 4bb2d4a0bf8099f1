package iocache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
)

// JourneyStoreImpl handles durable journey storage using various database backends.
type JourneyStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.JourneyStore = &JourneyStoreImpl{} // Compile-time check

// NewJourneyStore initializes and returns a new JourneyStore based on the backend type.
// SQL backends are migrated to the latest schema before use.
func NewJourneyStore(backend schema.DatabaseBackend, connStr string) (contract.JourneyStore, error) {
	switch backend {
	case schema.NoneBackend:
		return NewMemoryStore(), nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	for _, table := range []string{journeysTable, touchpointsTable} {
		if err := validateTableName(table); err != nil {
			return nil, err
		}
	}

	if err := ensureSchema(backend, connStr); err != nil {
		return nil, err
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	return &JourneyStoreImpl{
		db:      db,
		backend: backend,
		connStr: connStr,
	}, nil
}

// ListJourneys returns up to limit journeys ordered by id with their touchpoints.
func (js *JourneyStoreImpl) ListJourneys(ctx context.Context, limit int) ([]schema.Journey, error) {
	if limit <= 0 || limit > schema.MaxJourneys {
		limit = schema.MaxJourneys
	}

	journeysQuery := fmt.Sprintf(`SELECT journey_id, customer_name, conversion_value, conversion_date, touchpoint_count, time_to_conversion
		FROM %s ORDER BY journey_id LIMIT %s`,
		quoteTableName(journeysTable, js.backend), placeholders(js.backend, 1))

	rows, err := js.db.QueryContext(ctx, journeysQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journeys: %w", err)
	}
	journeys, err := scanJourneys(rows)
	if err != nil {
		return nil, err
	}
	if len(journeys) == 0 {
		return journeys, nil
	}

	index := make(map[string]int, len(journeys))
	for i, j := range journeys {
		index[j.JourneyID] = i
	}

	// MySQL rejects LIMIT inside IN subqueries, so join on a derived table instead
	touchpointsQuery := fmt.Sprintf(`SELECT t.journey_id, t.seq, t.channel, t.touch_time, t.cost, t.interaction_type, t.days_before_conversion
		FROM %s t JOIN (SELECT journey_id FROM %s ORDER BY journey_id LIMIT %s) j ON t.journey_id = j.journey_id
		ORDER BY t.journey_id, t.seq`,
		quoteTableName(touchpointsTable, js.backend),
		quoteTableName(journeysTable, js.backend),
		placeholders(js.backend, 1))

	tpRows, err := js.db.QueryContext(ctx, touchpointsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query touchpoints: %w", err)
	}
	defer func() { _ = tpRows.Close() }()

	for tpRows.Next() {
		var journeyID string
		tp, err := scanTouchpoint(tpRows, &journeyID)
		if err != nil {
			return nil, err
		}
		if i, ok := index[journeyID]; ok {
			journeys[i].Touchpoints = append(journeys[i].Touchpoints, tp)
		}
	}
	if err := tpRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read touchpoints: %w", err)
	}
	return journeys, nil
}

// GetJourney returns one journey with its touchpoints.
func (js *JourneyStoreImpl) GetJourney(ctx context.Context, journeyID string) (schema.Journey, error) {
	journeyQuery := fmt.Sprintf(`SELECT journey_id, customer_name, conversion_value, conversion_date, touchpoint_count, time_to_conversion
		FROM %s WHERE journey_id = %s`,
		quoteTableName(journeysTable, js.backend), placeholders(js.backend, 1))

	rows, err := js.db.QueryContext(ctx, journeyQuery, journeyID)
	if err != nil {
		return schema.Journey{}, fmt.Errorf("failed to query journey %s: %w", journeyID, err)
	}
	journeys, err := scanJourneys(rows)
	if err != nil {
		return schema.Journey{}, err
	}
	if len(journeys) == 0 {
		return schema.Journey{}, fmt.Errorf("%w: %s", contract.ErrJourneyNotFound, journeyID)
	}
	journey := journeys[0]

	touchpointsQuery := fmt.Sprintf(`SELECT journey_id, seq, channel, touch_time, cost, interaction_type, days_before_conversion
		FROM %s WHERE journey_id = %s ORDER BY seq`,
		quoteTableName(touchpointsTable, js.backend), placeholders(js.backend, 1))

	tpRows, err := js.db.QueryContext(ctx, touchpointsQuery, journeyID)
	if err != nil {
		return schema.Journey{}, fmt.Errorf("failed to query touchpoints of %s: %w", journeyID, err)
	}
	defer func() { _ = tpRows.Close() }()

	for tpRows.Next() {
		var id string
		tp, err := scanTouchpoint(tpRows, &id)
		if err != nil {
			return schema.Journey{}, err
		}
		journey.Touchpoints = append(journey.Touchpoints, tp)
	}
	if err := tpRows.Err(); err != nil {
		return schema.Journey{}, fmt.Errorf("failed to read touchpoints: %w", err)
	}
	return journey, nil
}

// ReplaceJourneys swaps every stored journey for the given set in one transaction.
func (js *JourneyStoreImpl) ReplaceJourneys(ctx context.Context, journeys []schema.Journey) (err error) {
	tx, err := js.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	quotedJourneys := quoteTableName(journeysTable, js.backend)
	quotedTouchpoints := quoteTableName(touchpointsTable, js.backend)

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+quotedTouchpoints); err != nil {
		return fmt.Errorf("failed to clear touchpoints: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM "+quotedJourneys); err != nil {
		return fmt.Errorf("failed to clear journeys: %w", err)
	}

	journeyStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (journey_id, customer_name, conversion_value, conversion_date, touchpoint_count, time_to_conversion) VALUES (%s)`,
		quotedJourneys, placeholders(js.backend, 6)))
	if err != nil {
		return fmt.Errorf("failed to prepare journey insert: %w", err)
	}
	defer func() { _ = journeyStmt.Close() }()

	touchpointStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (journey_id, seq, channel, touch_time, cost, interaction_type, days_before_conversion) VALUES (%s)`,
		quotedTouchpoints, placeholders(js.backend, 7)))
	if err != nil {
		return fmt.Errorf("failed to prepare touchpoint insert: %w", err)
	}
	defer func() { _ = touchpointStmt.Close() }()

	for _, j := range journeys {
		if _, err = journeyStmt.ExecContext(ctx,
			j.JourneyID, j.CustomerName, j.ConversionValue, timeArg(j.ConversionDate, js.backend),
			j.TouchpointCount, j.TimeToConversion,
		); err != nil {
			return fmt.Errorf("failed to insert journey %s: %w", j.JourneyID, err)
		}
		for _, tp := range j.Touchpoints {
			if _, err = touchpointStmt.ExecContext(ctx,
				j.JourneyID, tp.Sequence, tp.Channel, timeArg(tp.Timestamp, js.backend),
				tp.Cost, tp.InteractionType, tp.DaysBeforeConversion,
			); err != nil {
				return fmt.Errorf("failed to insert touchpoint %d of %s: %w", tp.Sequence, j.JourneyID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit journeys: %w", err)
	}
	return nil
}

// GetStatus returns status information about the journey store.
func (js *JourneyStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(js.backend),
		Connected: js.db != nil,
	}
	if js.db == nil {
		return status, nil
	}

	quotedJourneys := quoteTableName(journeysTable, js.backend)
	quotedTouchpoints := quoteTableName(touchpointsTable, js.backend)

	if err := js.db.QueryRow("SELECT COUNT(*) FROM " + quotedJourneys).Scan(&status.TotalJourneys); err != nil {
		return status, fmt.Errorf("failed to get total journeys: %w", err)
	}
	if err := js.db.QueryRow("SELECT COUNT(*) FROM " + quotedTouchpoints).Scan(&status.TotalTouchpoints); err != nil {
		return status, fmt.Errorf("failed to get total touchpoints: %w", err)
	}

	// Schema version is informational; a missing table leaves it at zero
	var version int64
	if err := js.db.QueryRow("SELECT version FROM " + quoteTableName(migrationsTable, js.backend)).Scan(&version); err == nil {
		status.SchemaVersion = int(version)
	}

	if status.TotalJourneys > 0 {
		var oldest, latest any
		rangeQuery := fmt.Sprintf("SELECT MIN(conversion_date), MAX(conversion_date) FROM %s", quotedJourneys)
		if err := js.db.QueryRow(rangeQuery).Scan(&oldest, &latest); err != nil {
			return status, fmt.Errorf("failed to get conversion range: %w", err)
		}
		var err error
		if status.OldestConversion, err = parseTimeValue(oldest); err != nil {
			return status, fmt.Errorf("failed to parse oldest conversion: %w", err)
		}
		if status.LatestConversion, err = parseTimeValue(latest); err != nil {
			return status, fmt.Errorf("failed to parse latest conversion: %w", err)
		}
	}

	status.TableSizeBytes = js.tableSizeBytes(status.TotalTouchpoints)
	return status, nil
}

// tableSizeBytes reports the storage used by the journey tables, or a rough estimate.
func (js *JourneyStoreImpl) tableSizeBytes(rows int) int64 {
	estimate := int64(rows) * 200
	var size int64

	switch js.backend {
	case schema.SQLiteBackend:
		// For SQLite, use page_count * page_size
		if err := js.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size); err != nil {
			return 0
		}
		return size

	case schema.MySQLBackend:
		// Use information_schema for MySQL
		cfg, err := mysql.ParseDSN(js.connStr)
		if err != nil || cfg.DBName == "" {
			return estimate
		}
		query := `SELECT COALESCE(SUM(data_length + index_length), 0) FROM information_schema.tables
			WHERE table_schema = ? AND table_name IN (?, ?)`
		if err := js.db.QueryRow(query, cfg.DBName, journeysTable, touchpointsTable).Scan(&size); err != nil {
			return estimate
		}
		return size

	case schema.PostgreSQLBackend:
		// Use pg_total_relation_size for PostgreSQL
		query := "SELECT pg_total_relation_size($1) + pg_total_relation_size($2)"
		if err := js.db.QueryRow(query, journeysTable, touchpointsTable).Scan(&size); err != nil {
			return estimate
		}
		return size

	default:
		return estimate
	}
}

// Close closes the database connection.
func (js *JourneyStoreImpl) Close() error {
	if js.db != nil {
		return js.db.Close()
	}
	return nil
}

// scanJourneys drains rows of journey columns and closes them.
func scanJourneys(rows *sql.Rows) ([]schema.Journey, error) {
	defer func() { _ = rows.Close() }()

	journeys := []schema.Journey{}
	for rows.Next() {
		var j schema.Journey
		var conversionDate any
		if err := rows.Scan(&j.JourneyID, &j.CustomerName, &j.ConversionValue, &conversionDate,
			&j.TouchpointCount, &j.TimeToConversion); err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		ts, err := parseTimeValue(conversionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse conversion date of %s: %w", j.JourneyID, err)
		}
		j.ConversionDate = ts
		j.Touchpoints = []schema.Touchpoint{}
		journeys = append(journeys, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journeys: %w", err)
	}
	return journeys, nil
}

// scanTouchpoint reads one touchpoint row and reports which journey it belongs to.
func scanTouchpoint(rows *sql.Rows, journeyID *string) (schema.Touchpoint, error) {
	var tp schema.Touchpoint
	var touchTime any
	if err := rows.Scan(journeyID, &tp.Sequence, &tp.Channel, &touchTime, &tp.Cost,
		&tp.InteractionType, &tp.DaysBeforeConversion); err != nil {
		return tp, fmt.Errorf("failed to scan touchpoint: %w", err)
	}
	ts, err := parseTimeValue(touchTime)
	if err != nil {
		return tp, fmt.Errorf("failed to parse touchpoint time: %w", err)
	}
	tp.Timestamp = ts
	return tp, nil
}
