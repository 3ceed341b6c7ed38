package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

type DailyLog struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Day   string `json:"day"`
	BW    string `json:"bw"`
	Sleep string `json:"sleep"`
	Steps string `json:"steps"`
	Top   string `json:"top"`
	Notes string `json:"notes"`
}

type DailyLogInput struct {
	Date  string
	Day   string
	BW    string
	Sleep string
	Steps string
	Top   string
	Notes string
}

const dailyLogColumns = `id, date, day, bw, sleep, steps, top, notes`

func scanDailyLog(row interface{ Scan(...any) error }) (*DailyLog, error) {
	l := &DailyLog{}
	err := row.Scan(&l.ID, &l.Date, &l.Day, &l.BW, &l.Sleep, &l.Steps, &l.Top, &l.Notes)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (db *DB) ListDailyLogs(userID, startDate, endDate string, limit int) ([]*DailyLog, error) {
	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE user_id = ?`
	args := []any{userID}
	if startDate != "" {
		query += ` AND date >= ?`
		args = append(args, startDate)
	}
	if endDate != "" {
		query += ` AND date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY date DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*DailyLog{}
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (db *DB) GetDailyLog(userID, date string) (*DailyLog, error) {
	return scanDailyLog(db.QueryRow(`SELECT `+dailyLogColumns+` FROM daily_logs
		WHERE user_id = ? AND date = ?`, userID, date))
}

// UpsertDailyLog writes the one row per (user, date).
func (db *DB) UpsertDailyLog(userID string, input DailyLogInput) (*DailyLog, error) {
	_, err := db.Exec(`
		INSERT INTO daily_logs (id, user_id, date, day, bw, sleep, steps, top, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date)
		DO UPDATE SET day = excluded.day, bw = excluded.bw, sleep = excluded.sleep,
		              steps = excluded.steps, top = excluded.top, notes = excluded.notes`,
		NewID(), userID, input.Date, input.Day, input.BW, input.Sleep,
		input.Steps, input.Top, input.Notes)
	if err != nil {
		return nil, fmt.Errorf("upserting daily log: %w", err)
	}
	return db.GetDailyLog(userID, input.Date)
}

func (db *DB) DeleteDailyLog(userID, logID string) error {
	res, err := db.Exec(`DELETE FROM daily_logs WHERE id = ? AND user_id = ?`, logID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- Stats ---

type MetricStats struct {
	Current *float64 `json:"current"`
	Average *float64 `json:"average"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
}

type DailyLogStats struct {
	TotalEntries int `json:"totalEntries"`
	Weight       MetricStats `json:"weight"`
	Sleep        struct {
		Average *float64 `json:"average"`
	} `json:"sleep"`
	Steps struct {
		Average *int `json:"average"`
		Total   int  `json:"total"`
	} `json:"steps"`
}

// DailyLogStats aggregates bodyweight, sleep and step metrics over the last
// n days. Metric fields are free text, so unparsable values are skipped.
func (db *DB) GetDailyLogStats(userID string, days int) (*DailyLogStats, error) {
	start := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	logs, err := db.ListDailyLogs(userID, start, "", 0)
	if err != nil {
		return nil, err
	}
	// ListDailyLogs returns newest first; stats read oldest to newest.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	stats := &DailyLogStats{TotalEntries: len(logs)}

	var weights, sleeps []float64
	var steps []int
	for _, l := range logs {
		if v, err := strconv.ParseFloat(l.BW, 64); err == nil && l.BW != "" {
			weights = append(weights, v)
		}
		if v, err := strconv.ParseFloat(l.Sleep, 64); err == nil && l.Sleep != "" {
			sleeps = append(sleeps, v)
		}
		if v, err := strconv.Atoi(l.Steps); err == nil && l.Steps != "" {
			steps = append(steps, v)
		}
	}

	if len(weights) > 0 {
		cur := weights[len(weights)-1]
		minW, maxW, sum := weights[0], weights[0], 0.0
		for _, w := range weights {
			if w < minW {
				minW = w
			}
			if w > maxW {
				maxW = w
			}
			sum += w
		}
		avg := sum / float64(len(weights))
		stats.Weight = MetricStats{Current: &cur, Average: &avg, Min: &minW, Max: &maxW}
	}
	if len(sleeps) > 0 {
		sum := 0.0
		for _, s := range sleeps {
			sum += s
		}
		avg := sum / float64(len(sleeps))
		stats.Sleep.Average = &avg
	}
	if len(steps) > 0 {
		sum := 0
		for _, s := range steps {
			sum += s
		}
		avg := sum / len(steps)
		stats.Steps.Average = &avg
		stats.Steps.Total = sum
	}
	return stats, nil
}
