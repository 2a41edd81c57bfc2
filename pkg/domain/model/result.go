package model

import (
	"time"
)

type Step string

const (
	StepVisibility       Step = "visibility"
	StepReadiness        Step = "readiness"
	StepBranchProtection Step = "branch_protection"
)

// Warning is a soft failure: the repository exists and is usable but needs
// manual follow-up.
type Warning struct {
	Step    Step   `json:"step" bigquery:"step"`
	Message string `json:"message" bigquery:"message"`
}

type ProvisionResult struct {
	Repository RepositoryHandle
	Warnings   []Warning
}

func (x *ProvisionResult) Warn(step Step, msg string) {
	x.Warnings = append(x.Warnings, Warning{Step: step, Message: msg})
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// ProvisionRecord is one audit row per provisioning workflow.
type ProvisionRecord struct {
	ID           string    `bigquery:"id" json:"id"`
	Timestamp    time.Time `bigquery:"timestamp" json:"timestamp"`
	RequestedBy  string    `bigquery:"requested_by" json:"requested_by"`
	Name         string    `bigquery:"name" json:"name"`
	Template     string    `bigquery:"template" json:"template"`
	Visibility   string    `bigquery:"visibility" json:"visibility"`
	Owner        string    `bigquery:"owner" json:"owner"`
	Outcome      string    `bigquery:"outcome" json:"outcome"`
	ErrorKind    string    `bigquery:"error_kind" json:"error_kind"`
	ErrorMessage string    `bigquery:"error_message" json:"error_message"`
	URL          string    `bigquery:"url" json:"url"`
	Warnings     []Warning `bigquery:"warnings" json:"warnings"`
}
