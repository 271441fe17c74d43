package transform

import (
	"strings"

	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/pkg/csvparse"
)

// Users CSV headers.
const (
	HeaderUserEmail    = "user_email"
	HeaderPassword     = "password"
	HeaderAssignedJobs = "assigned_jobs"
	HeaderRole         = "role"
)

// UsersFromTable decodes the admin users CSV. The role defaults to coder and
// RoleSet records whether the cell was filled in.
func UsersFromTable(table *csvparse.Table) []user.Record {
	records := make([]user.Record, 0, table.Len())
	if table == nil {
		return records
	}

	for _, row := range table.Rows {
		role := row.Get(HeaderRole)
		roleSet := role != ""
		if !roleSet {
			role = string(user.RoleCoder)
		}
		records = append(records, user.Record{
			Email:        row.Get(HeaderUserEmail),
			Password:     row.Get(HeaderPassword),
			AssignedJobs: SplitJobList(row.Get(HeaderAssignedJobs)),
			Role:         role,
			RoleSet:      roleSet,
		})
	}
	return records
}

// SplitJobList splits the inner comma list of the assigned_jobs cell. One
// surrounding pair of quotes is tolerated; empty entries are dropped.
func SplitJobList(raw string) []string {
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)

	jobs := []string{}
	for _, j := range strings.Split(raw, ",") {
		if j = strings.TrimSpace(j); j != "" {
			jobs = append(jobs, j)
		}
	}
	return jobs
}
