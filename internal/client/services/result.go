package services

import "github.com/dmitrijs2005/iceandfire/internal/client/models"

// Stage names a step of the startup sequence.
type Stage string

const (
	StageOpen   Stage = "open"
	StageSchema Stage = "schema"
	StageFetch  Stage = "fetch"
	StageWrite  Stage = "write"
	StageRead   Stage = "read"
)

// Result is the outcome of one Load. On success Characters holds the list
// read back from the store and Err is nil. On failure Characters is empty,
// Stage names the step that failed and Err carries the reason.
type Result struct {
	Characters []models.Character
	Stage      Stage
	Err        error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func failed(stage Stage, err error) Result {
	return Result{Characters: []models.Character{}, Stage: stage, Err: err}
}
