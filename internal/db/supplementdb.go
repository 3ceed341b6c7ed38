package db

// SupplementRef is one entry of the shared supplement reference catalog.
type SupplementRef struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Category             string `json:"category"`
	TypicalDose          string `json:"typicalDose"`
	TimingRecommendation string `json:"timingRecommendation"`
	Benefits             string `json:"benefits"`
	Precautions          string `json:"precautions"`
}

// ListSupplementRefs returns catalog entries, optionally filtered by a
// case-insensitive name substring.
func (db *DB) ListSupplementRefs(query string, limit int) ([]*SupplementRef, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sqlQuery := `SELECT id, name, category, typical_dose, timing_recommendation, benefits, precautions
		FROM supplement_database`
	args := []any{}
	if query != "" {
		sqlQuery += ` WHERE name LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, query)
	}
	sqlQuery += ` ORDER BY name ASC LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []*SupplementRef{}
	for rows.Next() {
		r := &SupplementRef{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.TypicalDose,
			&r.TimingRecommendation, &r.Benefits, &r.Precautions); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}
