package entity

// GroupCount is a single bucket of a categorical group-by
// (stage, status, department...).
type GroupCount struct {
	Key   string `json:"id"`
	Count int    `json:"count"`
}

// MonthCount is a single (year, month) creation bucket.
type MonthCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type LeadStats struct {
	Total         int          `json:"total"`
	Stages        []GroupCount `json:"stages,omitempty"`
	MonthlyCounts []MonthCount `json:"monthlyCounts,omitempty"`
}

type ProjectStats struct {
	Total         int          `json:"total"`
	Status        []GroupCount `json:"status"`
	MonthlyCounts []MonthCount `json:"monthlyCounts"`
}

type UserStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Verified   int `json:"verify"`
	Unverified int `json:"unVerify"`
	SubAdmins  int `json:"subAdmin"`
	Employees  int `json:"emp"`
}

type ClientStats struct {
	Total         int          `json:"total"`
	Indian        int          `json:"indian"`
	Foreigner     int          `json:"foreigner"`
	MonthlyCounts []MonthCount `json:"monthlyCounts"`
}

type QueryStats struct {
	Total         int          `json:"total"`
	Status        []GroupCount `json:"status"`
	MonthlyCounts []MonthCount `json:"monthlyCounts"`
}

type ContactStats struct {
	Total  int       `json:"total"`
	Recent []Contact `json:"data"`
}

type TeamStats struct {
	Total       int          `json:"total"`
	Departments []GroupCount `json:"department"`
}
