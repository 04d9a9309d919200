package models

import "time"

// Metric field JSON keys
const (
	FieldClarity  = "objective_clarity"
	FieldPlan     = "next_week_plan"
	FieldBurn     = "resourcing_load"
	FieldMomentum = "momentum"
	FieldQuality  = "quality"
	FieldGrowth   = "organic_growth"
)

// Color tier constants
const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorNone   = "none"
)

// Request types

type CreateClientRequest struct {
	Name string `json:"name"`
}

// Nil fields are left unchanged.
type UpdateClientRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// SurveyEntry is one client's ratings within a bulk submission.
// Metric fields are optional; absent fields do not contribute to averages.
type SurveyEntry struct {
	ClientID         int      `json:"client_id"`
	ObjectiveClarity *float64 `json:"objective_clarity"`
	NextWeekPlan     *float64 `json:"next_week_plan"`
	ResourcingLoad   *float64 `json:"resourcing_load"`
	Momentum         *float64 `json:"momentum"`
	Quality          *float64 `json:"quality"`
	OrganicGrowth    *float64 `json:"organic_growth"`
}

type SubmitSurveyRequest struct {
	Email     string        `json:"email"`
	Responses []SurveyEntry `json:"responses"`
}

// Response types

type ClientSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SubmitSurveyResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// MetricStat is one metric's weekly aggregate. Avg is nil when no
// submission that week carried the field.
type MetricStat struct {
	Avg   *float64 `json:"avg"`
	Color string   `json:"color"`
}

type ClientWeekReport struct {
	ClientID      int                   `json:"client_id"`
	Name          string                `json:"name"`
	ResponseCount int                   `json:"response_count"`
	Metrics       map[string]MetricStat `json:"metrics"`
}

type DashboardResponse struct {
	Week    string             `json:"week"`
	Clients []ClientWeekReport `json:"clients"`
}

// AnnotatedResponse is a stored response plus the resolved client name.
type AnnotatedResponse struct {
	SurveyResponse
	ClientName string `json:"client_name"`
}

type WeekStats struct {
	Week              string `json:"week"`
	UniqueRespondents int    `json:"unique_respondents"`
	ClientsCovered    int    `json:"clients_covered"`
	ActiveClients     int    `json:"active_clients"`
	TotalResponses    int    `json:"total_responses"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// SurveyResponse is immutable once stored. ClientID is not required to
// reference an existing client.
type SurveyResponse struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	ClientID         int       `json:"client_id"`
	ObjectiveClarity *float64  `json:"objective_clarity"`
	NextWeekPlan     *float64  `json:"next_week_plan"`
	ResourcingLoad   *float64  `json:"resourcing_load"`
	Momentum         *float64  `json:"momentum"`
	Quality          *float64  `json:"quality"`
	OrganicGrowth    *float64  `json:"organic_growth"`
	WeekStart        string    `json:"week_start"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// Dataset is the entire persisted document. Id counters only ever
// increase; ids are never reused.
type Dataset struct {
	Clients        []Client         `json:"clients"`
	Responses      []SurveyResponse `json:"responses"`
	NextClientID   int              `json:"nextClientId"`
	NextResponseID int              `json:"nextResponseId"`
}

// NewDataset returns an empty document with both counters at 1.
func NewDataset() *Dataset {
	return &Dataset{
		Clients:        []Client{},
		Responses:      []SurveyResponse{},
		NextClientID:   1,
		NextResponseID: 1,
	}
}

// MetricField describes one of the six survey metrics: its JSON key,
// its scoring polarity, and how to read it off a response.
type MetricField struct {
	Name          string
	LowerIsBetter bool
	Get           func(*SurveyResponse) *float64
}

// MetricFields lists the six fields in display order. Resourcing load
// is the only lower-is-better metric.
var MetricFields = []MetricField{
	{FieldClarity, false, func(r *SurveyResponse) *float64 { return r.ObjectiveClarity }},
	{FieldPlan, false, func(r *SurveyResponse) *float64 { return r.NextWeekPlan }},
	{FieldBurn, true, func(r *SurveyResponse) *float64 { return r.ResourcingLoad }},
	{FieldMomentum, false, func(r *SurveyResponse) *float64 { return r.Momentum }},
	{FieldQuality, false, func(r *SurveyResponse) *float64 { return r.Quality }},
	{FieldGrowth, false, func(r *SurveyResponse) *float64 { return r.OrganicGrowth }},
}
