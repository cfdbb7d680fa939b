package repository

import (
	"context"
	"encoding/json"
)

// HistoryResult holds the combined rows gathered for one public profile id.
type HistoryResult map[string]interface{}

// queryJSON runs a SQL that returns a single json value and unmarshals it.
func (r *JobsRepo) queryJSON(ctx context.Context, sql string, args ...interface{}) (interface{}, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, sql, args...).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HistoryForProfile collects past jobs and stored resumes for the given
// public profile id. Best-effort: a failed query skips its key and the
// function returns whatever it could fetch.
func (r *JobsRepo) HistoryForProfile(ctx context.Context, publicID string) (HistoryResult, error) {
	res := HistoryResult{}
	if r.pool == nil {
		return res, nil
	}

	if v, err := r.queryJSON(ctx, `SELECT coalesce(json_agg(row_to_json(j)), '[]') FROM normalize_jobs j WHERE j.public_id = $1`, publicID); err == nil {
		res["jobs"] = v
	}
	if v, err := r.queryJSON(ctx, `SELECT coalesce(json_agg(json_build_object('id', r.id, 'title', r.title, 'html_path', r.html_path, 'pdf_path', r.pdf_path, 'created_at', r.created_at)), '[]') FROM resumes r WHERE r.public_id = $1`, publicID); err == nil {
		res["resumes"] = v
	}

	return res, nil
}
