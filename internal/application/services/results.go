package services

// Result statuses shared by all public service operations. Callers branch
// on these fields; no operation surfaces an error past its own boundary.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
