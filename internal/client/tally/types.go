package tally

// Counter is a named tally. ID is assigned by the service and unique within a snapshot.
type Counter struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Cause is a categorized tally keyed by its name. Color is a "#RRGGBB" code.
type Cause struct {
	Cause string `json:"cause"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type idRequest struct {
	ID int64 `json:"id"`
}

type causeRequest struct {
	Cause string `json:"cause"`
}

type addPersonRequest struct {
	Label string `json:"label"`
}

type addCauseRequest struct {
	Cause string `json:"cause"`
	Color string `json:"color"`
}

type authRequest struct {
	Password string `json:"password"`
}
